// Package token defines the elements of an encoded game: integer codes and
// a small closed set of markers, one of which carries the final score.
package token

import (
	"errors"
	"hanabi/game"
	"strconv"
	"strings"
)

var ErrInvalidToken = errors.New("token: invalid token")

type Kind int

const (
	Code Kind = iota
	Start
	HandReveal
	Deck40
	Deck0
	MovesBegin
	FinalScore
)

var markerText = map[Kind]string{
	Start:      "<|START|>",
	HandReveal: "<|HAND_P1|>",
	Deck40:     "<|DECK_40|>",
	Deck0:      "<|DECK_0|>",
	MovesBegin: "<|START_MOVES|>",
}

const (
	scorePrefix = "<|FINAL_SCORE_"
	scoreSuffix = "|>"
)

// Token is either an integer code (Kind == Code) or a marker. Value holds the
// code, or the score of a FinalScore marker.
type Token struct {
	Kind  Kind
	Value int
}

func Int(code int) Token    { return Token{Kind: Code, Value: code} }
func Marker(k Kind) Token   { return Token{Kind: k} }
func Score(score int) Token { return Token{Kind: FinalScore, Value: score} }

func (t Token) IsCode() bool { return t.Kind == Code }

func (t Token) String() string {
	switch t.Kind {
	case Code:
		return strconv.Itoa(t.Value)
	case FinalScore:
		return scorePrefix + strconv.Itoa(t.Value) + scoreSuffix
	}
	return markerText[t.Kind]
}

// Parse reads the text form written by String.
func Parse(s string) (Token, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Token{}, &game.FormatError{Input: s, Err: ErrInvalidToken}
		}
		return Int(n), nil
	}
	for k, text := range markerText {
		if s == text {
			return Marker(k), nil
		}
	}
	if strings.HasPrefix(s, scorePrefix) && strings.HasSuffix(s, scoreSuffix) {
		n, err := strconv.Atoi(s[len(scorePrefix) : len(s)-len(scoreSuffix)])
		if err == nil {
			return Score(n), nil
		}
	}
	return Token{}, &game.FormatError{Input: s, Err: ErrInvalidToken}
}

func (k Kind) String() string {
	if k == Code {
		return "code"
	}
	if k == FinalScore {
		return "<|FINAL_SCORE_n|>"
	}
	return markerText[k]
}


package token

import (
	"hanabi/utils"
	"slices"
	"strings"
)

// Sequence is one encoded game, in event order.
type Sequence []Token

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

func (s Sequence) Count(k Kind) int {
	return utils.Count(s, func(t Token) bool { return t.Kind == k })
}

func (s Sequence) Has(k Kind) bool {
	return slices.ContainsFunc(s, func(t Token) bool { return t.Kind == k })
}

// Codes returns the integer codes in order, markers dropped.
func (s Sequence) Codes() []int {
	var codes []int
	for _, t := range s {
		if t.IsCode() {
			codes = append(codes, t.Value)
		}
	}
	return codes
}

// LastCode returns the last integer code of the sequence.
func (s Sequence) LastCode() (int, bool) {
	i := utils.LastIndex(s, Token.IsCode)
	if i < 0 {
		return 0, false
	}
	return s[i].Value, true
}

func (s Sequence) Equal(o Sequence) bool {
	return slices.Equal(s, o)
}

// ParseSequence reads a comma-separated sequence. Empty elements are skipped.
func ParseSequence(text string) (Sequence, error) {
	var seq Sequence
	for _, part := range strings.Split(text, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := Parse(part)
		if err != nil {
			return nil, err
		}
		seq = append(seq, t)
	}
	return seq, nil
}

// SplitGames cuts a sequence before every Start marker after the first.
func SplitGames(s Sequence) []Sequence {
	var games []Sequence
	var current Sequence
	for _, t := range s {
		if t.Kind == Start && len(current) > 0 {
			games = append(games, current)
			current = nil
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		games = append(games, current)
	}
	return games
}

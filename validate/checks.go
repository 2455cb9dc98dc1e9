// Package validate checks encoded sequences and composite samples for
// structural and range well-formedness without re-encoding any transcript.
package validate

import (
	"errors"
	"fmt"
	"hanabi/codec"
	"hanabi/game"
	"hanabi/token"
	"strconv"
	"strings"
)

var (
	ErrMissingStart      = errors.New("validate: game does not start with <|START|>")
	ErrMissingDeck       = errors.New("validate: game does not contain deck information")
	ErrNoMoves           = errors.New("validate: game does not contain any moves")
	ErrUnknownCodes      = errors.New("validate: game contains invalid move codes")
	ErrIncompleteGame    = errors.New("validate: complete game has no final score")
	ErrPartialEnd        = errors.New("validate: partial game does not end on a first player move")
	ErrPartialHasScore   = errors.New("validate: partial game carries a final score")
	ErrSequenceCount     = errors.New("validate: wrong number of games")
	ErrDuplicateSequence = errors.New("validate: game repeated within sample")
	ErrDuplicatePartial  = errors.New("validate: partial game already seen")
	ErrInvalidLabel      = errors.New("validate: prediction is not an integer")
)

// CheckSequence checks one encoded game; seq is its 1-based position in the sample.
func CheckSequence(s token.Sequence, seq int) []error {
	var issues []error
	if len(s) == 0 || s[0].Kind != token.Start {
		issues = append(issues, &game.StructuralError{Sequence: seq, Err: ErrMissingStart})
	}
	if !s.Has(token.Deck40) && !s.Has(token.Deck0) {
		issues = append(issues, &game.StructuralError{Sequence: seq, Err: ErrMissingDeck})
	}

	codes := s.Codes()
	hasMove := false
	var unknown []string
	for _, c := range codes {
		if codec.Moves.Contains(c) {
			hasMove = true
		}
		if !codec.Known(c) {
			unknown = append(unknown, strconv.Itoa(c))
		}
	}
	if !hasMove {
		issues = append(issues, &game.StructuralError{Sequence: seq, Err: ErrNoMoves})
	}
	if len(unknown) > 0 {
		issues = append(issues, &game.RangeError{
			Field: fmt.Sprintf("sequence %d codes", seq),
			Value: strings.Join(unknown, ","),
			Err:   ErrUnknownCodes,
		})
	}

	// A drained deck means the game ran to its end.
	if s.Has(token.Deck0) && !s.Has(token.FinalScore) {
		issues = append(issues, &game.StructuralError{Sequence: seq, Err: ErrIncompleteGame, Detail: "deck is empty"})
	}
	return issues
}

// CheckComplete requires the final score a context game must carry.
func CheckComplete(s token.Sequence, seq int) error {
	if s.Has(token.FinalScore) {
		return nil
	}
	return &game.StructuralError{Sequence: seq, Err: ErrIncompleteGame}
}

// CheckPartial requires a partial game to stop right after a first player
// move or an own draw, before any final score.
func CheckPartial(s token.Sequence, seq int) []error {
	var issues []error
	last, ok := s.LastCode()
	switch {
	case !ok:
		issues = append(issues, &game.StructuralError{Sequence: seq, Err: ErrPartialEnd, Detail: "no moves found"})
	case last != codec.SelfDrawCode && !codec.SelfMoves.Contains(last):
		issues = append(issues, &game.StructuralError{Sequence: seq, Err: ErrPartialEnd, Detail: fmt.Sprintf("last code is %d", last)})
	}
	if s.Has(token.FinalScore) {
		issues = append(issues, &game.StructuralError{Sequence: seq, Err: ErrPartialHasScore})
	}
	return issues
}

// CheckLabel parses a prediction label and requires it to be a partner move.
func CheckLabel(text string) (int, error) {
	label, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &game.FormatError{Input: text, Err: ErrInvalidLabel}
	}
	if !codec.PartnerMoves.Contains(label) {
		return label, &game.LabelRangeError{Label: label, Lo: codec.PartnerMoves.Lo, Hi: codec.PartnerMoves.Hi}
	}
	return label, nil
}

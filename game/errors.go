package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCardFormat = errors.New("game: invalid card format")
	ErrInvalidPosition   = errors.New("game: invalid position")
	ErrInvalidHintValue  = errors.New("game: invalid hint value")
	ErrInvalidPlayer     = errors.New("game: invalid player")
	ErrInvalidOutcome    = errors.New("game: invalid outcome")
	ErrLabelOutOfRange   = errors.New("game: label outside partner action range")
)

// FormatError reports malformed text: a card, position list, hint clause or score
// that cannot be read at all.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RangeError reports a well-formed value that falls outside its enumerated domain.
type RangeError struct {
	Field string
	Value string
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s %q out of range", e.Err, e.Field, e.Value)
}

func (e *RangeError) Unwrap() error { return e.Err }

// StructuralError reports a missing or repeated marker, a wrong number of
// sequences, or a duplicate. Sequence is 1-based; zero means the error is not
// tied to one sequence.
type StructuralError struct {
	Sequence int
	Err      error
	Detail   string
}

func (e *StructuralError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Sequence > 0 {
		return fmt.Sprintf("sequence %d: %s", e.Sequence, msg)
	}
	return msg
}

func (e *StructuralError) Unwrap() error { return e.Err }

// LabelRangeError reports a prediction label outside the band it must fall in.
type LabelRangeError struct {
	Label  int
	Lo, Hi int
}

func (e *LabelRangeError) Error() string {
	return fmt.Sprintf("label %d is not in the partner move range (%d-%d)", e.Label, e.Lo, e.Hi)
}

func (e *LabelRangeError) Unwrap() error { return ErrLabelOutOfRange }

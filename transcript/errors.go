package transcript

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTranscript      = errors.New("transcript: empty transcript")
	ErrMalformedMove        = errors.New("transcript: malformed move")
	ErrMalformedHand        = errors.New("transcript: malformed hand")
	ErrMissingDrawnCard     = errors.New("transcript: missing drawn card")
	ErrUnparseableHint      = errors.New("transcript: unparseable hint")
	ErrNoScoreFound         = errors.New("transcript: no score found")
	ErrMissingFinalScore    = errors.New("transcript: missing final score")
	ErrDuplicateStart       = errors.New("transcript: game started twice")
	ErrEventBeforeStart     = errors.New("transcript: event before game start")
	ErrEventAfterFinalScore = errors.New("transcript: event after final score")
	ErrRepeatedMarker       = errors.New("transcript: deck marker repeated")
	ErrIncompleteOpening    = errors.New("transcript: move or score before deck and hand")
)

// LineError ties an encoding failure to the transcript line that caused it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

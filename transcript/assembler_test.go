package transcript

import (
	"errors"
	"hanabi/game"
	"hanabi/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var exampleGame = []string{
	"Start game",
	"40 cards remaining",
	"Hands: P1 cards are 1y,2g,1g,2y,2w;",
	"You told P1 his O, M cards are a 1",
	"P1 played his O card (1y). P1 drew card 1g",
	"Piles: 0r 0w 1y 0g 0b",
	"Hands: P1 cards are 2g,1g,2y,2w,1g;",
	"P1 told You your SO card is g",
	"You played your O card (3g). You drew a card",
	"You discarded your N card (3b). You drew a card",
	"0 Cards Remaining",
	"P1 discarded his O card (4b). Hands: P1 cards are 1w,5g,1b,3b;",
	"You played your M card (1b) but failed.",
	"Final score 8 : 18 bomb: 0",
}

const exampleEncoding = "<|START|>,<|DECK_40|>,<|HAND_P1|>,16,22,21,17,32,<|START_MOVES|>," +
	"456,726,1416,1108,48,1,403,1,<|DECK_0|>,989,226,<|FINAL_SCORE_18|>"

func lines(l ...string) string { return strings.Join(l, "\n") }

// opening is the part of every game before the first move.
func opening(extra ...string) []string {
	return append([]string{"Start game", "40 cards remaining", "Hands: P1 cards are 1y,2g,1g,2y,2w;"}, extra...)
}

func TestEncode(t *testing.T) {
	t.Run("encoding a complete game", func(t *testing.T) {
		seq, err := Encode(lines(exampleGame...))
		require.NoError(t, err)
		require.Equal(t, exampleEncoding, seq.String())
	})

	t.Run("encoding is deterministic", func(t *testing.T) {
		first, err := Encode(lines(exampleGame...))
		require.NoError(t, err)
		second, err := Encode(lines(exampleGame...))
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("second encoding differs (-first +second):\n%s", diff)
		}
	})

	t.Run("final score glued to the last move", func(t *testing.T) {
		text := lines(opening("You played your M card (1b) but failed. Final score 8 : 18 bomb: 0")...)
		seq, err := Encode(text)
		require.NoError(t, err)
		require.Equal(t, "<|START|>,<|DECK_40|>,<|HAND_P1|>,16,22,21,17,32,<|START_MOVES|>,226,<|FINAL_SCORE_18|>", seq.String())
	})

	t.Run("repeated hand lines and unknown lines are skipped", func(t *testing.T) {
		text := lines(opening(
			"Hands: P1 cards are 5w,5w,5w,5w,5w;",
			"Turn 3 begins",
			"bomb: 1",
			"You played your O card (3g). You drew a card",
			"Final score 3",
		)...)
		seq, err := Encode(text)
		require.NoError(t, err)
		require.Equal(t, 1, seq.Count(token.HandReveal))
		require.Equal(t, []int{16, 22, 21, 17, 32, 48, 1}, seq.Codes())
	})

	t.Run("empty transcript", func(t *testing.T) {
		_, err := Encode("  \n ")
		require.ErrorIs(t, err, ErrEmptyTranscript)
	})
}

func TestEncodeHints(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"You told P1 his O, M cards are a 1", 456},
		{"You told P1 his SO, O cards are r", 431},
		{"You told P1 his O, SO cards are r", 431},
		{"You told P1 his SO card is r", 421},
		{"You told P1 his O card is r", 411},
		{"You told P1 his SN and N cards are w", 36 + 375 + (24-1)*10 + 4},
		{"You told P1 all his cards are a 5", 720},
		{"P1 told You your SO card is g", 1108},
		{"P1 told You your O, SO, M, SN, N cards are a 5", 1405},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			seq, err := Encode(lines(opening(tt.line, "Final score 0 : 0")...))
			require.NoError(t, err)
			code, ok := seq.LastCode()
			require.True(t, ok)
			require.Equal(t, tt.want, code)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Run("missing final score is reported after the whole scan", func(t *testing.T) {
		_, err := Encode(lines(opening("P1 played his O card (1y). P1 drew card 1g", "Turn 2")...))
		require.ErrorIs(t, err, ErrMissingFinalScore)

		var lineErr *LineError
		require.False(t, errors.As(err, &lineErr))
		var structErr *game.StructuralError
		require.True(t, errors.As(err, &structErr))
	})

	t.Run("malformed line in the middle wins over the missing score", func(t *testing.T) {
		_, err := Encode(lines(opening(
			"You played your XX card (3g). You drew a card",
			"You played your O card (3g). You drew a card",
		)...))
		require.ErrorIs(t, err, game.ErrInvalidPosition)
		require.NotErrorIs(t, err, ErrMissingFinalScore)

		var lineErr *LineError
		require.True(t, errors.As(err, &lineErr))
		require.Equal(t, 4, lineErr.Line)
		require.Equal(t, "You played your XX card (3g). You drew a card", lineErr.Text)
	})

	tests := []struct {
		name string
		text []string
		line int
		err  error
	}{
		{"bad card", opening("You discarded your N card (9q)"), 4, game.ErrInvalidCardFormat},
		{"move without a card", opening("You played your O card"), 4, ErrMalformedMove},
		{"draw without a card", opening("P1 played his O card (1y). P1 drew card"), 4, ErrMissingDrawnCard},
		{"hint without a value clause", opening("You told P1 his O cards r"), 4, ErrUnparseableHint},
		{"hint with a bad value", opening("You told P1 his O card is q"), 4, game.ErrInvalidHintValue},
		{"short hand", []string{"Start game", "Hands: P1 cards are 1y,2g,1g,2y;"}, 2, ErrMalformedHand},
		{"move before start", []string{"You played your O card (3g)"}, 1, ErrEventBeforeStart},
		{"second start", []string{"Start game", "Start game"}, 2, ErrDuplicateStart},
		{"move after the final score", opening("Final score 1 : 2", "You played your O card (3g)"), 5, ErrEventAfterFinalScore},
		{"score without deck and hand", []string{"Start game", "Final score 3 : 5"}, 2, ErrIncompleteOpening},
		{"move before the hand", []string{"Start game", "40 cards remaining", "You played your O card (3g)"}, 3, ErrIncompleteOpening},
		{"hint before the deck", []string{"Start game", "Hands: P1 cards are 1y,2g,1g,2y,2w;", "You told P1 his O card is r"}, 3, ErrIncompleteOpening},
		{"repeated full deck", []string{"Start game", "40 cards remaining", "40 cards remaining"}, 3, ErrRepeatedMarker},
		{"repeated empty deck", opening("0 Cards Remaining", "0 Cards Remaining"), 5, ErrRepeatedMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(lines(tt.text...))
			require.ErrorIs(t, err, tt.err)

			var lineErr *LineError
			require.True(t, errors.As(err, &lineErr))
			require.Equal(t, tt.line, lineErr.Line)
		})
	}
}

func TestParseScore(t *testing.T) {
	score, err := ParseScore("Final score 8 : 18 bomb: 0")
	require.NoError(t, err)
	require.Equal(t, 18, score)

	score, err = ParseScore("Final score 17")
	require.NoError(t, err)
	require.Equal(t, 17, score)

	_, err = ParseScore("Final score")
	require.ErrorIs(t, err, ErrNoScoreFound)
}

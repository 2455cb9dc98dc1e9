package transcript

import (
	"hanabi/game"
	"strings"
)

const (
	finalScorePrefix = "Final score"
	handPrefix       = "Hands: P1 cards are"
	selfDrawMarker   = "You drew a card"
	partnerDrawMark  = "P1 drew card"
)

type handler func(a *assembler, line string) error

// rule pairs a line shape with the handler that encodes it.
type rule struct {
	name   string
	match  func(line string) bool
	handle handler
}

// rules are tried in order; the first match handles the line. More specific
// shapes come before shorter ones that share their prefix.
var rules = []rule{
	{"game-start", hasPrefix("Start game"), (*assembler).start},
	{"deck-40", hasPrefix("40 cards remaining"), (*assembler).deck40},
	{"deck-0", hasPrefix("0 Cards Remaining"), (*assembler).deck0},
	{"hand-reveal", hasPrefix(handPrefix), (*assembler).revealHand},
	{"self-play", hasPrefix("You played"), move(game.Self, game.PlayAction)},
	{"self-discard", hasPrefix("You discarded"), move(game.Self, game.DiscardAction)},
	{"partner-play", hasPrefix("P1 played"), move(game.Partner, game.PlayAction)},
	{"partner-discard", hasPrefix("P1 discarded"), move(game.Partner, game.DiscardAction)},
	{"self-hint", contains("You told P1"), hint(game.Self)},
	{"partner-hint", contains("P1 told You"), hint(game.Partner)},
	{"final-score", hasPrefix(finalScorePrefix), (*assembler).finalScore},
	{"status", hasPrefix("Hands:", "Piles", "bomb"), skip},
}

func hasPrefix(prefixes ...string) func(string) bool {
	return func(line string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				return true
			}
		}
		return false
	}
}

func contains(s string) func(string) bool {
	return func(line string) bool { return strings.Contains(line, s) }
}

func skip(*assembler, string) error { return nil }

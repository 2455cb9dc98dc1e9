// Package codec maps Hanabi actions onto integer codes and back.
//
// Hint codes are base + 375 + (mask-1)*10 + value, so every hint of a player
// stays inside that player's block. They are not compatible with encodings
// that use mask*10, whose top hints spill into the next block.
package codec

import (
	"fmt"
	"hanabi/game"
)

const (
	SelfDrawCode = 1 // own draw, card hidden

	CardBase  = 11
	CardCount = 25

	SelfBase        = 36
	PartnerBase     = SelfBase + ActionSpan
	PartnerDrawBase = PartnerBase + ActionSpan

	// Per-player layout: play (success then fail), discard, hint.
	playSpan      = 2 * failOffset
	failOffset    = 5 * CardCount
	discardOffset = playSpan
	discardSpan   = 5 * CardCount
	hintOffset    = discardOffset + discardSpan
	hintSpan      = 31 * hintValues
	hintValues    = 10

	ActionSpan = playSpan + discardSpan + hintSpan
)

// Range is an inclusive integer interval.
type Range struct {
	Lo, Hi int
}

func (r Range) Contains(code int) bool {
	return code >= r.Lo && code <= r.Hi
}

func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

func (r Range) Width() int { return r.Hi - r.Lo + 1 }

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Lo, r.Hi) }

var (
	SelfDrawRange = Range{SelfDrawCode, SelfDrawCode}
	Cards         = Range{CardBase, CardBase + CardCount - 1}
	SelfMoves     = Range{SelfBase, SelfBase + ActionSpan - 1}
	PartnerMoves  = Range{PartnerBase, PartnerBase + ActionSpan - 1}
	PartnerDraws  = Range{PartnerDrawBase, PartnerDrawBase + CardCount - 1}
	Moves         = Range{SelfMoves.Lo, PartnerMoves.Hi}
)

// Base returns the first code of the player's action space.
func Base(p game.Player) int {
	if p == game.Partner {
		return PartnerBase
	}
	return SelfBase
}

// PlayRange covers successful and failed plays.
func PlayRange(p game.Player) Range {
	b := Base(p)
	return Range{b, b + playSpan - 1}
}

func DiscardRange(p game.Player) Range {
	b := Base(p) + discardOffset
	return Range{b, b + discardSpan - 1}
}

func HintRange(p game.Player) Range {
	b := Base(p) + hintOffset
	return Range{b, b + hintSpan - 1}
}

// MoveRange is the player's whole action space.
func MoveRange(p game.Player) Range {
	if p == game.Partner {
		return PartnerMoves
	}
	return SelfMoves
}

// Known reports whether code belongs to any range a sequence may contain.
func Known(code int) bool {
	return SelfDrawRange.Contains(code) || Cards.Contains(code) ||
		Moves.Contains(code) || PartnerDraws.Contains(code)
}

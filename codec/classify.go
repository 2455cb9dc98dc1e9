package codec

import "hanabi/game"

// Class names what a single integer token stands for.
type Class int

const (
	Unknown Class = iota
	SelfDrawClass
	CardClass
	PlayClass
	DiscardClass
	HintClass
	PartnerDrawClass
)

func (c Class) String() string {
	switch c {
	case SelfDrawClass:
		return "self_draw"
	case CardClass:
		return "card"
	case PlayClass:
		return "play"
	case DiscardClass:
		return "discard"
	case HintClass:
		return "hint"
	case PartnerDrawClass:
		return "partner_draw"
	}
	return "unknown"
}

// Classify returns the class of code and, for moves, the acting player.
func Classify(code int) (Class, game.Player) {
	switch {
	case code == SelfDrawCode:
		return SelfDrawClass, game.Self
	case Cards.Contains(code):
		return CardClass, game.Self
	case PartnerDraws.Contains(code):
		return PartnerDrawClass, game.Partner
	}
	for _, p := range []game.Player{game.Self, game.Partner} {
		switch {
		case PlayRange(p).Contains(code):
			return PlayClass, p
		case DiscardRange(p).Contains(code):
			return DiscardClass, p
		case HintRange(p).Contains(code):
			return HintClass, p
		}
	}
	return Unknown, game.Self
}

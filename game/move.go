package game

import (
	"hanabi/utils"
	"strconv"
)

// Action is one encodable game event. The set of implementations is closed:
// Play, Discard, Hint, OpponentDraw and SelfDraw.
type Action interface {
	Type() ActionType
	Validate() error
	action()
}

type Play struct {
	Player   Player
	Position Position
	Card     Card
	Outcome  Outcome
}

func (Play) Type() ActionType { return PlayAction }
func (Play) action()          {}

func (a Play) Validate() error {
	if err := a.Player.Validate(); err != nil {
		return err
	}
	if err := a.Position.Validate(); err != nil {
		return err
	}
	if a.Outcome != Success && a.Outcome != Fail {
		return &RangeError{Field: "outcome", Value: strconv.Itoa(int(a.Outcome)), Err: ErrInvalidOutcome}
	}
	return a.Card.Validate()
}

type Discard struct {
	Player   Player
	Position Position
	Card     Card
}

func (Discard) Type() ActionType { return DiscardAction }
func (Discard) action()          {}

func (a Discard) Validate() error {
	if err := a.Player.Validate(); err != nil {
		return err
	}
	if err := a.Position.Validate(); err != nil {
		return err
	}
	return a.Card.Validate()
}

// Hint tells the other player which of their cards share a color or value.
// Value holds the color symbol ("g") or the digit ("3").
type Hint struct {
	Player    Player
	Positions []Position
	Kind      HintKind
	Value     string
}

func (Hint) Type() ActionType { return HintAction }
func (Hint) action()          {}

func (a Hint) Validate() error {
	if err := a.Player.Validate(); err != nil {
		return err
	}
	if len(a.Positions) == 0 {
		return &FormatError{Input: "", Err: ErrInvalidPosition}
	}
	seen := map[Position]bool{}
	for _, p := range a.Positions {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p] {
			return &RangeError{Field: "repeated position", Value: string(p), Err: ErrInvalidPosition}
		}
		seen[p] = true
	}
	kind, err := ParseHintValue(a.Value)
	if err != nil {
		return err
	}
	if kind != a.Kind {
		return &RangeError{Field: a.Kind.String() + " hint", Value: a.Value, Err: ErrInvalidHintValue}
	}
	return nil
}

// Mask sets bit Rank() for every named position.
func (a Hint) Mask() int {
	mask := 0
	for _, p := range a.Positions {
		mask |= 1 << p.Rank()
	}
	return mask
}

// OpponentDraw is the partner drawing a card whose identity is shown.
type OpponentDraw struct {
	Card Card
}

func (OpponentDraw) Type() ActionType { return DrawAction }
func (OpponentDraw) action()          {}
func (a OpponentDraw) Validate() error { return a.Card.Validate() }

// SelfDraw is the own draw; the card stays hidden.
type SelfDraw struct{}

func (SelfDraw) Type() ActionType { return DrawAction }
func (SelfDraw) action()          {}
func (SelfDraw) Validate() error  { return nil }

// ParseHintValue classifies a hint value as a color or a number.
func ParseHintValue(s string) (HintKind, error) {
	if len(s) == 1 {
		if Color(s[0]).Rank() >= 0 {
			return ColorHint, nil
		}
		if n, err := strconv.Atoi(s); err == nil && utils.FindIndex(Values, n) >= 0 {
			return NumberHint, nil
		}
	}
	return 0, &RangeError{Field: "hint value", Value: s, Err: ErrInvalidHintValue}
}

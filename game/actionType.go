package game

// Player identifies the seat an action belongs to.
type Player int

const (
	Self    Player = iota // P0, "You"
	Partner               // P1
)

func (p Player) String() string {
	switch p {
	case Self:
		return "P0"
	case Partner:
		return "P1"
	}
	return "P?"
}

func (p Player) Validate() error {
	if p != Self && p != Partner {
		return &RangeError{Field: "player", Value: p.String(), Err: ErrInvalidPlayer}
	}
	return nil
}

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlayAction ActionType = iota
	DiscardAction
	HintAction
	DrawAction
)

func (t ActionType) String() string {
	switch t {
	case PlayAction:
		return "play"
	case DiscardAction:
		return "discard"
	case HintAction:
		return "hint"
	case DrawAction:
		return "draw"
	}
	return "unknown"
}

type Outcome int

const (
	Success Outcome = iota
	Fail
)

type HintKind int

const (
	ColorHint HintKind = iota
	NumberHint
)

func (k HintKind) String() string {
	if k == ColorHint {
		return "color"
	}
	return "number"
}

package codec

import (
	"errors"
	"fmt"
	"hanabi/game"
	"hanabi/utils"
	"strconv"
)

var ErrUnsupportedAction = errors.New("codec: unsupported action")

// Encode maps a validated action onto its integer code. The action is
// validated before any arithmetic.
func Encode(a game.Action) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: nil", ErrUnsupportedAction)
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}

	switch a := a.(type) {
	case game.Play:
		code := Base(a.Player) + 25*a.Position.Rank() + cardIndex(a.Card)
		if a.Outcome == game.Fail {
			code += failOffset
		}
		return code, nil
	case game.Discard:
		return Base(a.Player) + discardOffset + 25*a.Position.Rank() + cardIndex(a.Card), nil
	case game.Hint:
		return Base(a.Player) + hintOffset + (a.Mask()-1)*hintValues + hintOffsetOf(a), nil
	case game.OpponentDraw:
		return PartnerDrawBase + cardIndex(a.Card), nil
	case game.SelfDraw:
		return SelfDrawCode, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedAction, a)
}

// hintOffsetOf is 0-4 for a color (its rank) and 5-9 for a number.
func hintOffsetOf(h game.Hint) int {
	if h.Kind == game.ColorHint {
		return game.Color(h.Value[0]).Rank()
	}
	n, _ := strconv.Atoi(h.Value)
	return 5 + utils.FindIndex(game.Values, n)
}

// Decode is the inverse of Encode over every valid action code.
func Decode(code int) (game.Action, error) {
	switch {
	case code == SelfDrawCode:
		return game.SelfDraw{}, nil
	case PartnerDraws.Contains(code):
		return game.OpponentDraw{Card: cardAt(code - PartnerDrawBase)}, nil
	case SelfMoves.Contains(code):
		return decodeMove(game.Self, code-SelfBase), nil
	case PartnerMoves.Contains(code):
		return decodeMove(game.Partner, code-PartnerBase), nil
	}
	return nil, &game.RangeError{Field: "action code", Value: strconv.Itoa(code), Err: ErrUnknownCode}
}

func decodeMove(p game.Player, off int) game.Action {
	switch {
	case off < discardOffset:
		outcome := game.Success
		if off >= failOffset {
			outcome = game.Fail
			off -= failOffset
		}
		return game.Play{Player: p, Position: game.Positions[off/25], Card: cardAt(off % 25), Outcome: outcome}
	case off < hintOffset:
		off -= discardOffset
		return game.Discard{Player: p, Position: game.Positions[off/25], Card: cardAt(off % 25)}
	}
	off -= hintOffset
	mask, value := off/hintValues+1, off%hintValues

	var positions []game.Position
	for rank, pos := range game.Positions {
		if mask&(1<<rank) != 0 {
			positions = append(positions, pos)
		}
	}
	h := game.Hint{Player: p, Positions: positions}
	if value < 5 {
		h.Kind, h.Value = game.ColorHint, game.Colors[value].String()
	} else {
		h.Kind, h.Value = game.NumberHint, strconv.Itoa(game.Values[value-5])
	}
	return h
}

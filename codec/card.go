package codec

import (
	"errors"
	"hanabi/game"
	"strconv"
)

var ErrUnknownCode = errors.New("codec: code outside every range")

// CardIndex maps a card onto 0-24, colors major and values minor.
func CardIndex(c game.Card) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return cardIndex(c), nil
}

// CardCode is the public code 11-35 of a card.
func CardCode(c game.Card) (int, error) {
	i, err := CardIndex(c)
	if err != nil {
		return 0, err
	}
	return CardBase + i, nil
}

// DecodeCard is the inverse of CardCode.
func DecodeCard(code int) (game.Card, error) {
	if !Cards.Contains(code) {
		return game.Card{}, &game.RangeError{Field: "card code", Value: strconv.Itoa(code), Err: ErrUnknownCode}
	}
	return cardAt(code - CardBase), nil
}

func cardIndex(c game.Card) int {
	return 5*c.Color.Rank() + c.Value - 1
}

func cardAt(i int) game.Card {
	return game.Card{Value: game.Values[i%5], Color: game.Colors[i/5]}
}

package game

import (
	"fmt"
	"hanabi/utils"
)

type Color byte

const (
	Red    Color = 'r'
	Yellow Color = 'y'
	Green  Color = 'g'
	Blue   Color = 'b'
	White  Color = 'w'
)

// Colors lists the color alphabet in rank order.
var Colors = []Color{Red, Yellow, Green, Blue, White}

// Values lists the card values in rank order.
var Values = []int{1, 2, 3, 4, 5}

// Rank returns the color's index in Colors, or -1 for a symbol outside the alphabet.
func (c Color) Rank() int {
	return utils.FindIndex(Colors, c)
}

func (c Color) String() string { return string(c) }

// Card is one Hanabi card, written as value then color ("3g").
type Card struct {
	Value int
	Color Color
}

// ParseCard reads a two-character card such as "1r".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' {
		return Card{}, &FormatError{Input: s, Err: ErrInvalidCardFormat}
	}
	c := Card{Value: int(s[0] - '0'), Color: Color(s[1])}
	if err := c.Validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (c Card) Validate() error {
	if utils.FindIndex(Values, c.Value) < 0 {
		return &RangeError{Field: "card value", Value: c.String(), Err: ErrInvalidCardFormat}
	}
	if c.Color.Rank() < 0 {
		return &RangeError{Field: "card color", Value: c.String(), Err: ErrInvalidCardFormat}
	}
	return nil
}

func (c Card) String() string {
	return fmt.Sprintf("%d%c", c.Value, byte(c.Color))
}

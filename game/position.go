package game

import (
	"hanabi/utils"
	"strings"
)

// Position is a hand slot label.
type Position string

const (
	Oldest       Position = "O"
	SecondOldest Position = "SO"
	Middle       Position = "M"
	SecondNewest Position = "SN"
	Newest       Position = "N"
)

// Positions lists hand slots from oldest to newest.
var Positions = []Position{Oldest, SecondOldest, Middle, SecondNewest, Newest}

// matchOrder tries two-letter labels first so "SO" is never read as "O".
var matchOrder = []Position{SecondOldest, SecondNewest, Oldest, Middle, Newest}

// Rank returns the slot index (0 = oldest), or -1 for an unknown label.
func (p Position) Rank() int {
	return utils.FindIndex(Positions, p)
}

func (p Position) Validate() error {
	if p.Rank() < 0 {
		return &RangeError{Field: "position", Value: string(p), Err: ErrInvalidPosition}
	}
	return nil
}

func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// ScanPositions reads a position list such as "O, SO, N" or "SO and M".
// Labels may be separated by spaces, commas or the word "and". Every label is
// matched whole; an unknown or repeated label fails the scan.
func ScanPositions(s string) ([]Position, error) {
	var out []Position
	seen := map[Position]bool{}
	i := 0
	for i < len(s) {
		if isSeparator(s[i]) {
			i++
			continue
		}
		if strings.HasPrefix(s[i:], "and") && atBoundary(s, i+3) {
			i += 3
			continue
		}
		p, ok := matchPosition(s, i)
		if !ok {
			return nil, &RangeError{Field: "position", Value: wordAt(s, i), Err: ErrInvalidPosition}
		}
		if seen[p] {
			return nil, &RangeError{Field: "repeated position", Value: string(p), Err: ErrInvalidPosition}
		}
		seen[p] = true
		out = append(out, p)
		i += len(p)
	}
	if len(out) == 0 {
		return nil, &FormatError{Input: s, Err: ErrInvalidPosition}
	}
	return out, nil
}

func matchPosition(s string, i int) (Position, bool) {
	for _, p := range matchOrder {
		if strings.HasPrefix(s[i:], string(p)) && atBoundary(s, i+len(p)) {
			return p, true
		}
	}
	return "", false
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\t'
}

func atBoundary(s string, i int) bool {
	return i >= len(s) || isSeparator(s[i])
}

func wordAt(s string, i int) string {
	j := i
	for j < len(s) && !isSeparator(s[j]) {
		j++
	}
	return s[i:j]
}

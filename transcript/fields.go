package transcript

import (
	"hanabi/game"
	"regexp"
	"strconv"
	"strings"
)

var numericRun = regexp.MustCompile(`\d+`)

// ParseScore reads the score of a "Final score A : B bomb: n" line. The
// display is "opponent : self", so with two or more numbers the second wins.
func ParseScore(line string) (int, error) {
	runs := numericRun.FindAllString(line, -1)
	var run string
	switch {
	case len(runs) >= 2:
		run = runs[1]
	case len(runs) == 1:
		run = runs[0]
	default:
		return 0, &game.FormatError{Input: line, Err: ErrNoScoreFound}
	}
	return strconv.Atoi(run)
}

// parseMove reads "<owner> <POS> card (<card>)" out of a play or discard line.
func parseMove(line, owner string) (game.Position, game.Card, error) {
	_, rest, ok := strings.Cut(line, " "+owner+" ")
	if !ok {
		return "", game.Card{}, &game.FormatError{Input: line, Err: ErrMalformedMove}
	}
	posText, rest, ok := strings.Cut(rest, "card")
	if !ok {
		return "", game.Card{}, &game.FormatError{Input: line, Err: ErrMalformedMove}
	}
	_, rest, ok = strings.Cut(rest, "(")
	if !ok {
		return "", game.Card{}, &game.FormatError{Input: line, Err: ErrMalformedMove}
	}
	cardText, _, ok := strings.Cut(rest, ")")
	if !ok {
		return "", game.Card{}, &game.FormatError{Input: line, Err: ErrMalformedMove}
	}

	pos, err := game.ParsePosition(strings.TrimSpace(posText))
	if err != nil {
		return "", game.Card{}, err
	}
	card, err := game.ParseCard(strings.TrimSpace(cardText))
	if err != nil {
		return "", game.Card{}, err
	}
	return pos, card, nil
}

// parseHint reads "<POS-list> card is <value>" or "<POS-list> cards are <value>".
// An empty list stands for every slot when the line says "all".
func parseHint(clause string, all bool) (game.Hint, error) {
	posText, value, ok := strings.Cut(clause, "card is")
	if !ok {
		posText, value, ok = strings.Cut(clause, "cards are")
	}
	if !ok {
		return game.Hint{}, &game.FormatError{Input: clause, Err: ErrUnparseableHint}
	}

	var positions []game.Position
	posText = strings.TrimSpace(posText)
	if (posText == "" || posText == "all") && all {
		positions = append(positions, game.Positions...)
	} else {
		var err error
		if positions, err = game.ScanPositions(posText); err != nil {
			return game.Hint{}, err
		}
	}

	value = strings.TrimSpace(value)
	value = strings.TrimSpace(strings.TrimPrefix(value, "a "))
	kind, err := game.ParseHintValue(value)
	if err != nil {
		return game.Hint{}, err
	}
	return game.Hint{Positions: positions, Kind: kind, Value: value}, nil
}

// splitFinalScore separates a final-score fragment glued after a move.
func splitFinalScore(line string) (move, score string) {
	i := strings.Index(line, finalScorePrefix)
	if i <= 0 {
		return line, ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i:])
}

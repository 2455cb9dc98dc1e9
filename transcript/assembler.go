// Package transcript turns the textual log of one Hanabi game into its
// token sequence.
package transcript

import (
	"hanabi/codec"
	"hanabi/game"
	"hanabi/token"
	"strings"

	"github.com/rs/zerolog/log"
)

type state int

const (
	awaitStart state = iota
	awaitDeckOrHand
	inMoves
	done
)

type assembler struct {
	seq          token.Sequence
	state        state
	handRevealed bool
	decks        map[token.Kind]bool
}

// Encode converts one transcript into its token sequence. The first failing
// line aborts with a *LineError; a transcript without a final score fails with
// ErrMissingFinalScore once every line has been read.
func Encode(text string) (token.Sequence, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &game.FormatError{Input: text, Err: ErrEmptyTranscript}
	}

	a := &assembler{decks: map[token.Kind]bool{}}
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := a.feed(line); err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
	}

	if !a.seq.Has(token.FinalScore) {
		return nil, &game.StructuralError{Err: ErrMissingFinalScore}
	}
	return a.seq, nil
}

func (a *assembler) feed(line string) error {
	move, score := splitFinalScore(line)
	if err := a.dispatch(move); err != nil {
		return err
	}
	if score != "" {
		return a.finalScore(score)
	}
	return nil
}

func (a *assembler) dispatch(line string) error {
	for _, r := range rules {
		if r.match(line) {
			return r.handle(a, line)
		}
	}
	log.Debug().Str("line", line).Msg("skipping unrecognized transcript line")
	return nil
}

func (a *assembler) emit(tokens ...token.Token) {
	a.seq = append(a.seq, tokens...)
}

func (a *assembler) emitCode(action game.Action) error {
	code, err := codec.Encode(action)
	if err != nil {
		return err
	}
	a.emit(token.Int(code))
	return nil
}

// ready rejects events outside a started, unfinished game.
func (a *assembler) ready() error {
	switch a.state {
	case awaitStart:
		return &game.StructuralError{Err: ErrEventBeforeStart}
	case done:
		return &game.StructuralError{Err: ErrEventAfterFinalScore}
	}
	return nil
}

func (a *assembler) start(string) error {
	if a.state != awaitStart {
		return &game.StructuralError{Err: ErrDuplicateStart}
	}
	a.emit(token.Marker(token.Start))
	a.state = awaitDeckOrHand
	return nil
}

func (a *assembler) deck40(string) error { return a.deck(token.Deck40) }
func (a *assembler) deck0(string) error  { return a.deck(token.Deck0) }

func (a *assembler) deck(k token.Kind) error {
	if err := a.ready(); err != nil {
		return err
	}
	if a.decks[k] {
		return &game.StructuralError{Err: ErrRepeatedMarker, Detail: token.Marker(k).String()}
	}
	a.decks[k] = true
	a.emit(token.Marker(k))
	return nil
}

// inGame rejects moves until the deck size and the partner's hand are known.
func (a *assembler) inGame() error {
	if err := a.ready(); err != nil {
		return err
	}
	if !a.decks[token.Deck40] || !a.handRevealed {
		return &game.StructuralError{Err: ErrIncompleteOpening}
	}
	return nil
}

// revealHand encodes the partner's opening hand. Later hand lines repeat the
// current hand and are ignored.
func (a *assembler) revealHand(line string) error {
	if a.handRevealed {
		return nil
	}
	if err := a.ready(); err != nil {
		return err
	}

	body := strings.NewReplacer(",", " ", ";", " ").Replace(strings.TrimPrefix(line, handPrefix))
	fields := strings.Fields(body)
	if len(fields) != game.HandSize {
		return &game.FormatError{Input: line, Err: ErrMalformedHand}
	}

	hand := make([]token.Token, 0, len(fields)+2)
	hand = append(hand, token.Marker(token.HandReveal))
	for _, f := range fields {
		card, err := game.ParseCard(f)
		if err != nil {
			return err
		}
		code, err := codec.CardCode(card)
		if err != nil {
			return err
		}
		hand = append(hand, token.Int(code))
	}
	hand = append(hand, token.Marker(token.MovesBegin))

	a.emit(hand...)
	a.handRevealed = true
	a.state = inMoves
	return nil
}

// move builds the handler of a play or discard line, including the draw that
// may follow it on the same line.
func move(p game.Player, t game.ActionType) handler {
	owner := "your"
	if p == game.Partner {
		owner = "his"
	}
	return func(a *assembler, line string) error {
		if err := a.inGame(); err != nil {
			return err
		}
		pos, card, err := parseMove(line, owner)
		if err != nil {
			return err
		}

		var action game.Action = game.Discard{Player: p, Position: pos, Card: card}
		if t == game.PlayAction {
			outcome := game.Success
			if strings.Contains(line, "failed") {
				outcome = game.Fail
			}
			action = game.Play{Player: p, Position: pos, Card: card, Outcome: outcome}
		}
		if err := a.emitCode(action); err != nil {
			return err
		}
		a.state = inMoves
		return a.draw(p, line)
	}
}

func (a *assembler) draw(p game.Player, line string) error {
	if p == game.Self {
		if strings.Contains(line, selfDrawMarker) {
			return a.emitCode(game.SelfDraw{})
		}
		return nil
	}

	_, drawn, ok := strings.Cut(line, partnerDrawMark)
	if !ok {
		return nil
	}
	drawn = strings.TrimSpace(drawn)
	if drawn == "" {
		return &game.FormatError{Input: line, Err: ErrMissingDrawnCard}
	}
	card, err := game.ParseCard(drawn)
	if err != nil {
		return err
	}
	return a.emitCode(game.OpponentDraw{Card: card})
}

// hint builds the handler of "You told P1 his ..." and "P1 told You your ..." lines.
func hint(p game.Player) handler {
	marker, owners := "You told P1", []string{"his", "your"}
	if p == game.Partner {
		marker, owners = "P1 told You", []string{"your"}
	}
	return func(a *assembler, line string) error {
		if err := a.inGame(); err != nil {
			return err
		}
		_, clause, _ := strings.Cut(line, marker)

		found := false
		for _, o := range owners {
			if _, rest, ok := strings.Cut(clause, o+" "); ok {
				clause, found = rest, true
				break
			}
		}
		if !found {
			return &game.FormatError{Input: line, Err: ErrUnparseableHint}
		}

		h, err := parseHint(clause, strings.Contains(line, "all"))
		if err != nil {
			return err
		}
		h.Player = p
		if err := a.emitCode(h); err != nil {
			return err
		}
		a.state = inMoves
		return nil
	}
}

func (a *assembler) finalScore(line string) error {
	if err := a.inGame(); err != nil {
		return err
	}
	score, err := ParseScore(line)
	if err != nil {
		return err
	}
	a.emit(token.Score(score))
	a.state = done
	return nil
}

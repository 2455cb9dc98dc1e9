package dataset

import (
	"hanabi/codec"
	"hanabi/meta"
	"hanabi/token"
	"hanabi/utils"
	"hanabi/validate"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

var sampleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("hanabi/samples"))

// Sample bundles complete context games, one partial game and the partner
// move that followed it.
type Sample struct {
	ID      string
	Bots    [2]string
	Context []token.Sequence
	Partial token.Sequence
	Label   int
}

func newSample(bots [2]string, context []token.Sequence, partial token.Sequence, label int) Sample {
	name := bots[0] + "/" + bots[1] + "/" + partial.String()
	return Sample{
		ID:      uuid.NewSHA1(sampleNamespace, []byte(name)).String(),
		Bots:    bots,
		Context: context,
		Partial: partial,
		Label:   label,
	}
}

// Sequences returns the context games followed by the partial game.
func (s Sample) Sequences() []token.Sequence {
	return append(slices.Clone(s.Context), s.Partial)
}

// ExtractPrediction cuts a complete game just before the partner's last move.
// It reports false for games too short to cut or without partner moves.
func ExtractPrediction(game token.Sequence) (token.Sequence, int, bool) {
	if len(game) <= meta.MinGameTokens {
		return nil, 0, false
	}
	i := utils.LastIndex(game, func(t token.Token) bool {
		return t.IsCode() && codec.PartnerMoves.Contains(t.Value)
	})
	if i < 0 {
		return nil, 0, false
	}
	return slices.Clone(game[:i]), game[i].Value, true
}

func (s Sample) validationSample(index int) validate.Sample {
	return validate.Sample{Index: index, Sequences: s.Sequences(), Label: strconv.Itoa(s.Label)}
}

package dataset

import (
	"context"
	"errors"
	"fmt"
	"hanabi/meta"
	"hanabi/metrics"
	"hanabi/token"
	"hanabi/validate"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(g *Generator)

func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

func WithContextGames(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.contextGames = n
		}
	}
}

func WithSamplesPerPair(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.samplesPerPair = n
		}
	}
}

func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(g *Generator) {
		if c != nil {
			g.metrics = c
		}
	}
}

// Generator draws composite samples for every ordered pair of bots. Encoding
// runs in parallel; sampling is single-threaded on one seeded source so the
// same inputs and seed always give the same samples.
type Generator struct {
	fullDir        string
	predictionDir  string
	bots           []string
	seed           uint64
	contextGames   int
	samplesPerPair int
	workers        int
	metrics        metrics.Collector
	validator      *validate.Validator
	failures       []Failure
}

func NewGenerator(fullDir, predictionDir string, bots []string, options ...Option) *Generator {
	g := &Generator{ // Default values
		fullDir:        fullDir,
		predictionDir:  predictionDir,
		bots:           bots,
		seed:           meta.Seed,
		contextGames:   meta.ContextGames,
		samplesPerPair: meta.SamplesPerPair,
		workers:        meta.Workers,
		metrics:        metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	g.validator = validate.New(validate.WithContextGames(g.contextGames))
	return g
}

// Failures lists the transcripts dropped during the last Generate.
func (g *Generator) Failures() []Failure { return g.failures }

func (g *Generator) Generate(ctx context.Context) ([]Sample, error) {
	g.metrics.Start()
	g.failures = nil
	rng := rand.New(rand.NewSource(g.seed))

	var samples []Sample
	for _, b1 := range g.bots {
		for _, b2 := range g.bots {
			part, err := g.pair(ctx, [2]string{b1, b2}, rng)
			if err != nil {
				return nil, err
			}
			samples = append(samples, part...)
		}
	}
	return samples, nil
}

func (g *Generator) pair(ctx context.Context, bots [2]string, rng *rand.Rand) ([]Sample, error) {
	fullPath := filepath.Join(g.fullDir, fmt.Sprintf("full_games_%s_%s.txt", bots[0], bots[1]))
	predPath := filepath.Join(g.predictionDir, fmt.Sprintf("prediction_games_%s_%s.txt", bots[0], bots[1]))

	full, err := g.load(ctx, fullPath)
	if err != nil {
		return nil, err
	}
	partials, err := g.load(ctx, predPath)
	if err != nil {
		return nil, err
	}
	if full == nil || partials == nil {
		return nil, nil
	}

	pool := NewPool(full)
	rng.Shuffle(len(partials), func(i, j int) {
		partials[i], partials[j] = partials[j], partials[i]
	})

	log.Info().Msgf("sampling %s vs %s: %d complete games, %d prediction games", bots[0], bots[1], len(full), len(partials))

	var samples []Sample
	for _, seq := range partials {
		if len(samples) == g.samplesPerPair {
			break
		}
		partial, label, ok := ExtractPrediction(seq)
		if !ok {
			g.metrics.AddSkipped()
			continue
		}

		contextGames, err := pool.TakeMany(g.contextGames, rng)
		if errors.Is(err, ErrPoolExhausted) {
			log.Info().Msgf("%s vs %s: complete games exhausted after %d samples", bots[0], bots[1], len(samples))
			break
		}

		s := newSample(bots, contextGames, partial, label)
		if r := g.validator.Check(s.validationSample(len(samples))); !r.Valid() {
			pool.Return(contextGames)
			g.metrics.AddSkipped()
			log.Debug().Str("sample", s.ID).Errs("issues", r.Issues).Msg("discarding invalid sample")
			continue
		}
		g.metrics.AddSample()
		samples = append(samples, s)
	}
	return samples, nil
}

// load encodes every game of a transcript file. A missing file yields nil.
func (g *Generator) load(ctx context.Context, path string) ([]token.Sequence, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("transcript file not found, skipping pair")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read transcripts: %w", err)
	}

	encoded, failures, err := EncodeAll(ctx, SplitTranscripts(path, string(content)), g.workers, g.metrics)
	if err != nil {
		return nil, err
	}
	g.failures = append(g.failures, failures...)

	games := make([]token.Sequence, 0, len(encoded))
	for _, e := range encoded {
		games = append(games, e.Sequence)
	}
	return games, nil
}

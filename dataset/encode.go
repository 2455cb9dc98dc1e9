// Package dataset builds composite training samples from files of game
// transcripts and reads them back for validation.
package dataset

import (
	"context"
	"errors"
	"hanabi/metrics"
	"hanabi/token"
	"hanabi/transcript"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const gameHeader = "Start game"

// Source is one transcript and where it came from.
type Source struct {
	Name  string
	Index int
	Text  string
}

type Encoded struct {
	Source   Source
	Sequence token.Sequence
}

type Failure struct {
	Source Source
	Err    error
}

// Record converts the failure into a metrics row.
func (f Failure) Record() metrics.FailureRecord {
	r := metrics.FailureRecord{Source: f.Source.Name, Game: f.Source.Index, Reason: f.Err.Error()}
	var lineErr *transcript.LineError
	if errors.As(f.Err, &lineErr) {
		r.Line = lineErr.Line
	}
	return r
}

// SplitTranscripts cuts a file holding many games at every "Start game" line.
// Text before the first game is dropped.
func SplitTranscripts(name, content string) []Source {
	parts := strings.Split(content, gameHeader)
	if lead := strings.TrimSpace(parts[0]); lead != "" {
		log.Debug().Str("source", name).Int("bytes", len(lead)).Msg("skipping text before the first game")
	}
	var sources []Source
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sources = append(sources, Source{
			Name:  name,
			Index: len(sources),
			Text:  gameHeader + "\n" + part,
		})
	}
	return sources
}

// EncodeAll encodes sources on up to workers goroutines. Results keep the
// input order. A transcript that fails to encode is dropped and reported as a
// Failure; only cancellation of ctx returns an error.
func EncodeAll(ctx context.Context, sources []Source, workers int, collector metrics.Collector) ([]Encoded, []Failure, error) {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	sequences := make([]token.Sequence, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			collector.AddTranscript()
			sequences[i], errs[i] = transcript.Encode(src.Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var encoded []Encoded
	var failures []Failure
	for i, src := range sources {
		if errs[i] != nil {
			collector.AddFailure()
			log.Warn().Str("source", src.Name).Int("game", src.Index).Err(errs[i]).Msg("dropping transcript")
			failures = append(failures, Failure{Source: src, Err: errs[i]})
			continue
		}
		collector.AddEncoded()
		encoded = append(encoded, Encoded{Source: src, Sequence: sequences[i]})
	}
	return encoded, failures, nil
}

package validate

import (
	"fmt"
	"hanabi/codec"
	"hanabi/game"
	"hanabi/meta"
	"hanabi/metrics"
	"hanabi/token"
	"sync"
)

// Sample is a composite sample as read back from disk: context games followed
// by the partial game, plus the raw label. Issues holds problems found while
// reading it.
type Sample struct {
	Index     int
	Sequences []token.Sequence
	Label     string
	Issues    []error
}

type Result struct {
	Index  int
	Issues []error
}

func (r Result) Valid() bool { return len(r.Issues) == 0 }

type Summary struct {
	Total   int
	Valid   int
	Invalid int
	Labels  map[string]int
}

type Option func(v *Validator)

func WithContextGames(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.contextGames = n
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(v *Validator) {
		if c != nil {
			v.metrics = c
		}
	}
}

// Validator checks samples over one dataset pass. It is safe for concurrent
// use; the set of partial games seen so far is shared by every call.
type Validator struct {
	contextGames int
	metrics      metrics.Collector

	mu   sync.Mutex
	seen map[string]struct{}
}

func New(options ...Option) *Validator {
	v := &Validator{
		contextGames: meta.ContextGames,
		metrics:      metrics.NewCollector(),
		seen:         map[string]struct{}{},
	}
	for _, option := range options {
		option(v)
	}
	return v
}

// Check validates one sample and records it in the pass. Every issue is
// reported; none stops the check.
func (v *Validator) Check(s Sample) Result {
	issues := append([]error(nil), s.Issues...)
	n := len(s.Sequences)

	if n != v.contextGames+1 {
		issues = append(issues, &game.StructuralError{
			Err:    ErrSequenceCount,
			Detail: fmt.Sprintf("expected %d context games and 1 partial game, found %d", v.contextGames, n),
		})
		for i, seq := range s.Sequences {
			issues = append(issues, &game.StructuralError{
				Sequence: i + 1,
				Err:      ErrSequenceCount,
				Detail:   fmt.Sprintf("has %d start markers and %d final score markers", seq.Count(token.Start), seq.Count(token.FinalScore)),
			})
		}
	}

	firstSeen := map[string]int{}
	for i, seq := range s.Sequences {
		idx := i + 1
		issues = append(issues, CheckSequence(seq, idx)...)
		if i == n-1 {
			issues = append(issues, CheckPartial(seq, idx)...)
		} else if err := CheckComplete(seq, idx); err != nil {
			issues = append(issues, err)
		}

		key := seq.String()
		if first, ok := firstSeen[key]; ok {
			issues = append(issues, &game.StructuralError{Sequence: idx, Err: ErrDuplicateSequence, Detail: fmt.Sprintf("same as sequence %d", first)})
		} else {
			firstSeen[key] = idx
		}
	}

	if n > 0 && !v.markSeen(s.Sequences[n-1].String()) {
		issues = append(issues, &game.StructuralError{Sequence: n, Err: ErrDuplicatePartial})
	}

	label, err := CheckLabel(s.Label)
	if err != nil {
		issues = append(issues, err)
		v.metrics.AddLabel("invalid")
	} else {
		class, _ := codec.Classify(label)
		v.metrics.AddLabel(class.String())
	}

	if len(issues) == 0 {
		v.metrics.AddValid()
	} else {
		v.metrics.AddInvalid()
	}
	return Result{Index: s.Index, Issues: issues}
}

func (v *Validator) markSeen(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.seen[key]; ok {
		return false
	}
	v.seen[key] = struct{}{}
	return true
}

// CheckAll validates samples in order and returns the results of invalid ones.
func (v *Validator) CheckAll(samples []Sample) []Result {
	var invalid []Result
	for _, s := range samples {
		if r := v.Check(s); !r.Valid() {
			invalid = append(invalid, r)
		}
	}
	return invalid
}

func (v *Validator) Summary() Summary {
	m := v.metrics.Complete()
	return Summary{
		Total:   m.Valid + m.Invalid,
		Valid:   m.Valid,
		Invalid: m.Invalid,
		Labels:  m.Labels,
	}
}

package dataset

import (
	"errors"
	"hanabi/token"
	"sync"

	"golang.org/x/exp/rand"
)

var ErrPoolExhausted = errors.New("dataset: not enough complete games left")

// Pool owns the complete games still available as sample context. Games taken
// from it are never handed out again.
type Pool struct {
	mu    sync.Mutex
	games []token.Sequence
}

func NewPool(games []token.Sequence) *Pool {
	return &Pool{games: append([]token.Sequence(nil), games...)}
}

func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.games)
}

// TakeMany removes n games chosen by rng, all or nothing.
func (p *Pool) TakeMany(n int, rng *rand.Rand) ([]token.Sequence, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n > len(p.games) {
		return nil, ErrPoolExhausted
	}
	// Partial Fisher-Yates: the first n slots end up holding the chosen games.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(p.games)-i)
		p.games[i], p.games[j] = p.games[j], p.games[i]
	}
	taken := append([]token.Sequence(nil), p.games[:n]...)
	p.games = p.games[n:]
	return taken, nil
}

// Return puts games taken by TakeMany back into the pool.
func (p *Pool) Return(games []token.Sequence) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.games = append(p.games, games...)
}

package engine

import (
	"sync"

	"github.com/abhisek/mathstudio/internal/problem"
)

type poolKey struct {
	genre problem.Genre
	tier  problem.Tier
}

// Pool is an in-memory ExtensionSource. It is typically loaded once at
// start-up with the approved problems from the store, and may be replaced
// wholesale with Reset when the store changes.
type Pool struct {
	mu    sync.RWMutex
	byKey map[poolKey][]problem.Problem
	size  int
}

// NewPool indexes ps by genre and tier.
func NewPool(ps []problem.Problem) *Pool {
	pool := &Pool{}
	pool.Reset(ps)
	return pool
}

// Reset replaces the pool's contents.
func (p *Pool) Reset(ps []problem.Problem) {
	byKey := make(map[poolKey][]problem.Problem)
	for _, pr := range ps {
		k := poolKey{pr.Genre, pr.Tier}
		byKey[k] = append(byKey[k], pr.Clone())
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.byKey = byKey
	p.size = len(ps)
}

// Candidates implements ExtensionSource.
func (p *Pool) Candidates(g problem.Genre, t problem.Tier) []problem.Problem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.byKey[poolKey{g, t}]
}

// Len returns the number of problems in the pool.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.size
}

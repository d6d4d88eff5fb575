// Package workers contains the bounded download execution pool and the fetcher
package workers

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many downloads run in true parallel. It is an explicitly
// constructed, injected resource so tests can substitute a single-slot variant.
type Pool struct {
	sem    *semaphore.Weighted
	size   int64
	logger zerolog.Logger
}

// NewPool creates a pool with the given number of slots
func NewPool(size int64, logger zerolog.Logger) *Pool {
	if size < 1 {
		size = 1
	}

	return &Pool{
		sem:    semaphore.NewWeighted(size),
		size:   size,
		logger: logger.With().Str("component", "download-pool").Logger(),
	}
}

// Size returns the number of parallel slots
func (p *Pool) Size() int64 {
	return p.size
}

// Do runs fn while holding one pool slot, queueing until a slot frees up
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)

	p.logger.Debug().Msg("Pool slot acquired")
	return fn()
}

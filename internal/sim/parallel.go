package sim

import (
	"context"

	"github.com/san-kum/orbitsim/internal/physics"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent universes concurrently. Each member gets its own
// Universe and metrics; nothing is shared between goroutines.
type Ensemble struct {
	build     func(seed int64) (*physics.Universe, error)
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

func NewEnsemble(build func(seed int64) (*physics.Universe, error), metrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{build: build, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one result per member in seed order. The first failing member
// cancels the rest.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		i := i
		g.Go(func() error {
			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(i)

			u, err := e.build(cfgCopy.Seed)
			if err != nil {
				return err
			}

			s := New(u)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			res, err := s.Run(ctx, cfgCopy)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

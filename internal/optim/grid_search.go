package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/sim"
)

var (
	ErrUnknownParam = errors.New("optim: unknown parameter")
	ErrNoCandidate  = errors.New("optim: no candidate produced the metric")
)

// Scaling parameters understood by Apply. Each multiplies one property of
// every body in a scenario.
const (
	SeedScale   = "seed_scale"
	ChargeScale = "charge_scale"
	MassScale   = "mass_scale"
)

func Params() []string {
	return []string{ChargeScale, MassScale, SeedScale}
}

// Apply scales cfg's bodies in place by each named parameter.
func Apply(cfg *config.Config, params map[string]float64) error {
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, name := range names {
		switch name {
		case SeedScale, ChargeScale, MassScale:
		default:
			return fmt.Errorf("%w: %s", ErrUnknownParam, name)
		}
	}

	for _, name := range names {
		v := params[name]
		for i := range cfg.Bodies {
			b := &cfg.Bodies[i]
			switch name {
			case SeedScale:
				b.SeedForce.X *= v
				b.SeedForce.Y *= v
			case ChargeScale:
				b.Charge *= v
			case MassScale:
				b.Mass *= v
			}
		}
	}
	return nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// GridSearch tries every combination of parameter values and keeps the one
// that minimizes a metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search builds a scenario for each grid point, runs it with the default
// metrics and returns the parameters with the lowest finite metricName value.
// Candidates that fail to build or validate are skipped. Cancellation of ctx
// aborts the search.
func (g *GridSearch) Search(
	ctx context.Context,
	build func(params map[string]float64) (*config.Config, error),
	metricName string,
) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	err := g.searchRecursive(ctx, 0, make(map[string]float64), build, metricName, &best, &bestParams)
	if err != nil {
		return nil, 0, err
	}
	if bestParams == nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoCandidate, metricName)
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	build func(map[string]float64) (*config.Config, error),
	metricName string,
	best *float64,
	bestParams *map[string]float64,
) error {
	if depth == len(g.paramNames) {
		if err := ctx.Err(); err != nil {
			return err
		}

		cfg, err := build(current)
		if err != nil {
			return nil
		}
		if err := cfg.Validate(); err != nil {
			return nil
		}

		s := sim.New(cfg.Universe())
		for _, m := range metrics.Default() {
			s.AddMetric(m)
		}
		result, err := s.Run(ctx, cfg.SimConfig())
		if errors.Is(err, sim.ErrCanceled) {
			return err
		}
		if err != nil {
			return nil
		}

		val, ok := result.Metrics[metricName]
		if !ok || math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, build, metricName, best, bestParams); err != nil {
			return err
		}
	}
	return nil
}

package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitsim/internal/physics"
)

// Simulator drives a Universe for a fixed number of ticks, feeding every tick
// to its metrics and observers and recording a subsampled trajectory.
type Simulator struct {
	universe  *physics.Universe
	metrics   []Metric
	observers []Observer
	scratch   []physics.Body
}

func New(u *physics.Universe) *Simulator {
	return &Simulator{
		universe:  u,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Universe() *physics.Universe { return s.universe }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	every := cfg.RecordEvery
	if every <= 0 {
		every = 1
	}

	result := &Result{
		Frames:  make([]Frame, 0, cfg.Ticks/every+2),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	f := s.frame()
	s.notify(f)
	result.Frames = append(result.Frames, f.Clone())

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, fmt.Errorf("%w after %d ticks: %w", ErrCanceled, result.TicksTaken, ctx.Err())
		default:
		}

		s.universe.Tick()
		result.TicksTaken++

		f = s.frame()
		s.notify(f)

		last := i == cfg.Ticks-1
		if cfg.ValidateState {
			if bad := f.FirstInvalid(); bad >= 0 {
				result.Errors = append(result.Errors, &StepError{Tick: f.Tick, Body: bad, Wrapped: ErrInvalidState})
				result.Frames = append(result.Frames, f.Clone())
				break
			}
		}

		if result.TicksTaken%every == 0 || last {
			result.Frames = append(result.Frames, f.Clone())
		}
	}

	s.collect(result)
	return result, nil
}

// RunWithCallback ticks until cfg.Ticks is reached or callback returns false.
// Nothing is recorded.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
		default:
		}

		s.universe.Tick()
		f := s.frame()

		if cfg.ValidateState {
			if bad := f.FirstInvalid(); bad >= 0 {
				return &StepError{Tick: f.Tick, Body: bad, Wrapped: ErrInvalidState}
			}
		}

		if !callback(f) {
			return nil
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("%w, got %d", ErrNoTicks, cfg.Ticks)
	}
	return nil
}

func (s *Simulator) frame() Frame {
	s.scratch = s.universe.AppendBodies(s.scratch[:0])
	return Frame{Tick: s.universe.Ticks(), Bodies: s.scratch}
}

func (s *Simulator) notify(f Frame) {
	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, obs := range s.observers {
		obs.OnTick(f)
	}
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

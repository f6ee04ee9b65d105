package metrics

import (
	"github.com/san-kum/orbitsim/internal/sim"
)

// Stability is the fraction of observed ticks where every body stayed within
// radius of where it started.
type Stability struct {
	name       string
	radius     float64
	origin     sim.Frame
	violations int
	samples    int
}

func NewStability(radius float64) *Stability {
	return &Stability{
		name:   "stability",
		radius: radius,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(f sim.Frame) {
	if s.samples == 0 {
		s.origin = f.Clone()
	}
	s.samples++

	r2 := s.radius * s.radius
	for i, b := range f.Bodies {
		if i >= len(s.origin.Bodies) {
			break
		}
		// NaN compares false, so test the negation
		if !(b.Pos.Sub(s.origin.Bodies[i].Pos).NormSquared() <= r2) {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.origin = sim.Frame{}
	s.violations = 0
	s.samples = 0
}

// InvalidBodies counts bodies holding NaN or Inf in the latest frame.
type InvalidBodies struct {
	count int
}

func NewInvalidBodies() *InvalidBodies { return &InvalidBodies{} }

func (m *InvalidBodies) Name() string { return "invalid_bodies" }

func (m *InvalidBodies) Observe(f sim.Frame) {
	m.count = 0
	for _, b := range f.Bodies {
		if !b.Pos.IsFinite() || !b.Force.IsFinite() {
			m.count++
		}
	}
}

func (m *InvalidBodies) Value() float64 { return float64(m.count) }
func (m *InvalidBodies) Reset()         { m.count = 0 }

package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// MaxSpeed is the largest per-tick displacement any body reached.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(f sim.Frame) {
	for _, b := range f.Bodies {
		m.max = math.Max(m.max, b.Force.Norm())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// MinSeparation is the closest any two bodies came during the run. It stays
// +Inf for fewer than two bodies.
type MinSeparation struct {
	min float64
}

func NewMinSeparation() *MinSeparation { return &MinSeparation{min: math.Inf(1)} }

func (m *MinSeparation) Name() string { return "min_separation" }

func (m *MinSeparation) Observe(f sim.Frame) {
	for i := range f.Bodies {
		for j := i + 1; j < len(f.Bodies); j++ {
			m.min = math.Min(m.min, f.Bodies[j].Pos.Sub(f.Bodies[i].Pos).Norm())
		}
	}
}

func (m *MinSeparation) Value() float64 { return m.min }
func (m *MinSeparation) Reset()         { m.min = math.Inf(1) }

// CentroidDrift is how far the mass-weighted centroid moved from the first
// observed frame to the latest.
type CentroidDrift struct {
	start   [2]float64
	current [2]float64
	seen    bool
}

func NewCentroidDrift() *CentroidDrift { return &CentroidDrift{} }

func (c *CentroidDrift) Name() string { return "centroid_drift" }

func (c *CentroidDrift) Observe(f sim.Frame) {
	x, y, m := 0.0, 0.0, 0.0
	for _, b := range f.Bodies {
		x += b.Mass * b.Pos.X
		y += b.Mass * b.Pos.Y
		m += b.Mass
	}
	if m == 0 {
		return
	}
	c.current = [2]float64{x / m, y / m}
	if !c.seen {
		c.start = c.current
		c.seen = true
	}
}

func (c *CentroidDrift) Value() float64 {
	return math.Hypot(c.current[0]-c.start[0], c.current[1]-c.start[1])
}

func (c *CentroidDrift) Reset() {
	*c = CentroidDrift{}
}

// TotalCharge sums the charge of the latest frame in elementary charges.
type TotalCharge struct {
	sum float64
}

func NewTotalCharge() *TotalCharge { return &TotalCharge{} }

func (t *TotalCharge) Name() string { return "total_charge" }

func (t *TotalCharge) Observe(f sim.Frame) {
	t.sum = 0
	for _, b := range f.Bodies {
		t.sum += b.Charge
	}
}

func (t *TotalCharge) Value() float64 {
	return t.sum / physics.ElementaryCharge
}

func (t *TotalCharge) Reset() { t.sum = 0 }

// Default returns the metrics recorded for every run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewEnergyDrift(),
		NewMaxSpeed(),
		NewMinSeparation(),
		NewCentroidDrift(),
		NewTotalCharge(),
		NewInvalidBodies(),
		NewStability(100),
	}
}

package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// coulomb is 1/(4*pi*eps0).
var coulomb = 1.0 / (4.0 * math.Pi * physics.Epsilon0)

// TotalEnergy treats each body's accumulated force as a velocity and returns
// the kinetic term 0.5*m*|F|^2 plus gravitational and electrostatic pair
// potentials. Coincident bodies contribute Inf.
func TotalEnergy(bodies []physics.Body) float64 {
	ke, pe := 0.0, 0.0
	for i, a := range bodies {
		ke += 0.5 * a.Mass * a.Force.NormSquared()
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			r := b.Pos.Sub(a.Pos).Norm()
			pe += -physics.G*a.Mass*b.Mass/r + coulomb*a.Charge*b.Charge/r
		}
	}
	return ke + pe
}

type Energy struct {
	name        string
	samples     int
	totalEnergy float64
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f sim.Frame) {
	e.totalEnergy += TotalEnergy(f.Bodies)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift is the largest relative departure from the first observed
// energy. The accumulate-and-displace rule does not conserve energy, so this
// measures how far a run wanders rather than integrator error.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(f sim.Frame) {
	energy := TotalEnergy(f.Bodies)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

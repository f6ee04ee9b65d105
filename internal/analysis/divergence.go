package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
)

var (
	ErrBodyIndex    = errors.New("analysis: body index out of range")
	ErrPerturbation = errors.New("analysis: perturbation must be positive")
)

// Divergence records how far a perturbed copy of a universe drifts from the
// unperturbed one.
type Divergence struct {
	Body         int
	Perturbation float64
	// Separation[t] is the summed position distance after tick t+1.
	Separation []float64
	// Rate is the mean of ln(sep/perturbation) per tick, over finite samples.
	Rate float64
}

// Diverge ticks two copies of u side by side, one with body displaced by
// perturbation along X, and measures their separation after every tick. u is
// not advanced. Sampling stops early once either copy goes non-finite.
func Diverge(u *physics.Universe, body int, perturbation float64, ticks int) (*Divergence, error) {
	if body < 0 || body >= u.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBodyIndex, body, u.Len())
	}
	if !(perturbation > 0) {
		return nil, fmt.Errorf("%w: %g", ErrPerturbation, perturbation)
	}

	ref := u.Clone()
	bodies := u.Bodies()
	bodies[body].Pos.X += perturbation
	pert := physics.New()
	for _, b := range bodies {
		pert.AddBody(b)
	}

	d := &Divergence{
		Body:         body,
		Perturbation: perturbation,
		Separation:   make([]float64, 0, ticks),
	}

	var a, b []physics.Body
	sumLog := 0.0
	count := 0
	for t := 0; t < ticks; t++ {
		ref.Tick()
		pert.Tick()

		a = ref.AppendBodies(a[:0])
		b = pert.AppendBodies(b[:0])
		sep := separation(a, b)
		if math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}
		d.Separation = append(d.Separation, sep)

		if sep > 0 {
			sumLog += math.Log(sep / perturbation)
			count++
		}
	}

	if count > 0 {
		d.Rate = sumLog / float64(count)
	}
	return d, nil
}

func separation(a, b []physics.Body) float64 {
	sum := 0.0
	for i := range a {
		sum += b[i].Pos.Sub(a[i].Pos).NormSquared()
	}
	return math.Sqrt(sum)
}

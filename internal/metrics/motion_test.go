package metrics

import (
	"math"
	"testing"

	"github.com/onsi/gomega"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

func TestMaxSpeed(t *testing.T) {
	g := gomega.NewWithT(t)
	m := NewMaxSpeed()

	m.Observe(sim.Frame{Bodies: []physics.Body{{Force: physics.Vec2{X: 3, Y: 4}}, {Force: physics.Vec2{X: 1}}}})
	m.Observe(sim.Frame{Bodies: []physics.Body{{Force: physics.Vec2{X: 2}}}})
	g.Expect(m.Value()).To(gomega.BeNumerically("~", 5, 1e-12))

	m.Reset()
	g.Expect(m.Value()).To(gomega.BeZero())
}

func TestMinSeparation(t *testing.T) {
	g := gomega.NewWithT(t)
	m := NewMinSeparation()

	g.Expect(math.IsInf(m.Value(), 1)).To(gomega.BeTrue())

	m.Observe(sim.Frame{Bodies: pair(10)})
	m.Observe(sim.Frame{Bodies: pair(4)})
	m.Observe(sim.Frame{Bodies: pair(7)})
	g.Expect(m.Value()).To(gomega.BeNumerically("~", 4, 1e-12))

	m.Reset()
	m.Observe(sim.Frame{Bodies: pair(7)[:1]})
	g.Expect(math.IsInf(m.Value(), 1)).To(gomega.BeTrue())
}

func TestCentroidDrift(t *testing.T) {
	g := gomega.NewWithT(t)
	c := NewCentroidDrift()

	c.Observe(sim.Frame{Bodies: pair(30)}) // centroid x = 20
	g.Expect(c.Value()).To(gomega.BeZero())

	moved := pair(30)
	moved[0].Pos.Y = 3 // centroid y = 1
	c.Observe(sim.Frame{Bodies: moved})
	g.Expect(c.Value()).To(gomega.BeNumerically("~", 1, 1e-12))

	c.Reset()
	c.Observe(sim.Frame{Bodies: moved})
	g.Expect(c.Value()).To(gomega.BeZero())
}

func TestTotalCharge(t *testing.T) {
	g := gomega.NewWithT(t)
	m := NewTotalCharge()

	m.Observe(sim.Frame{Bodies: []physics.Body{
		physics.NewBody(0, 0, 1, 2e12),
		physics.NewBody(1, 0, 1, -2e12),
		physics.NewBody(2, 0, 1, -2e12),
	}})
	g.Expect(m.Value()).To(gomega.BeNumerically("~", -2e12, 1))
}

func TestStability(t *testing.T) {
	g := gomega.NewWithT(t)
	s := NewStability(5)

	g.Expect(s.Value()).To(gomega.Equal(1.0))

	s.Observe(sim.Frame{Bodies: pair(10)})
	near := pair(10)
	near[1].Pos.X = 13
	s.Observe(sim.Frame{Bodies: near})
	far := pair(10)
	far[1].Pos.X = 16
	s.Observe(sim.Frame{Bodies: far})
	nan := pair(10)
	nan[0].Pos.X = math.NaN()
	s.Observe(sim.Frame{Bodies: nan})

	g.Expect(s.Value()).To(gomega.BeNumerically("~", 0.5, 1e-12))
}

func TestInvalidBodies(t *testing.T) {
	g := gomega.NewWithT(t)
	m := NewInvalidBodies()

	bodies := pair(10)
	bodies[1].Force.Y = math.Inf(-1)
	m.Observe(sim.Frame{Bodies: bodies})
	g.Expect(m.Value()).To(gomega.Equal(1.0))

	m.Observe(sim.Frame{Bodies: pair(10)})
	g.Expect(m.Value()).To(gomega.BeZero())
}

func TestDefaultNames(t *testing.T) {
	g := gomega.NewWithT(t)
	seen := map[string]bool{}
	for _, m := range Default() {
		g.Expect(seen).NotTo(gomega.HaveKey(m.Name()))
		seen[m.Name()] = true
	}
	g.Expect(seen).To(gomega.HaveKey("min_separation"))
	g.Expect(seen).To(gomega.HaveKey("centroid_drift"))
}

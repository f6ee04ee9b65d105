package physics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Gravity", func() {
	It("is equal and opposite for equal masses", func() {
		a := NewBody(0, 0, 5000, 0)
		b := NewBody(30, 40, 5000, 0)

		ab := Gravity(a, b)
		ba := Gravity(b, a)

		Expect(ab.X).To(BeNumerically("~", -ba.X, 1e-20))
		Expect(ab.Y).To(BeNumerically("~", -ba.Y, 1e-20))
		Expect(ab.Norm()).To(BeNumerically("~", ba.Norm(), 1e-20))
	})

	It("points from a toward b", func() {
		a := NewBody(0, 0, 10, 0)
		b := NewBody(10, 0, 10, 0)

		f := Gravity(a, b)
		Expect(f.X).To(BeNumerically(">", 0))
		Expect(f.Y).To(BeZero())
	})

	It("scales the raw separation instead of a unit vector", func() {
		a := NewBody(0, 0, 100, 0)
		b := NewBody(0, 20, 300, 0)

		want := G * 100 * 300 / 400 * 20
		Expect(Gravity(a, b).Y).To(BeNumerically("~", want, want*1e-12))
		Expect(Gravity(a, b).Norm()).To(BeNumerically("~", G*100*300/20, want*1e-12))
	})

	It("is zero when either mass is zero", func() {
		a := NewBody(0, 0, 0, 0)
		b := NewBody(3, 4, 1000, 0)
		Expect(Gravity(a, b)).To(Equal(Vec2{}))
		Expect(Gravity(b, a)).To(Equal(Vec2{}))
	})

	It("does not mutate its inputs", func() {
		a := NewBody(1, 2, 3, 4)
		b := NewBody(5, 6, 7, 8)
		a0, b0 := a, b
		_ = Gravity(a, b)
		_ = Electrostatic(a, b)
		Expect(a).To(Equal(a0))
		Expect(b).To(Equal(b0))
	})
})

var _ = Describe("Electrostatic", func() {
	It("attracts opposite charges", func() {
		a := NewBody(0, 0, 1, 1e12)
		b := NewBody(10, 0, 1, -1e12)

		Expect(Electrostatic(a, b).X).To(BeNumerically(">", 0), "a pulled toward b")
		Expect(Electrostatic(b, a).X).To(BeNumerically("<", 0), "b pulled toward a")
	})

	It("repels like charges", func() {
		for _, q := range []float64{1e12, -1e12} {
			a := NewBody(0, 0, 1, q)
			b := NewBody(0, 10, 1, q)

			Expect(Electrostatic(a, b).Y).To(BeNumerically("<", 0))
			Expect(Electrostatic(b, a).Y).To(BeNumerically(">", 0))
		}
	})

	It("uses Coulomb's constant and elementary charge scaling", func() {
		a := NewBody(0, 0, 0, 1)
		b := NewBody(2, 0, 0, 1)

		k := 1 / (4 * math.Pi * Epsilon0)
		want := k * ElementaryCharge * ElementaryCharge / 4 * -2
		Expect(Electrostatic(a, b).X).To(BeNumerically("~", want, math.Abs(want)*1e-12))
	})

	It("vanishes for neutral bodies", func() {
		a := NewBody(0, 0, 1, 0)
		b := NewBody(1, 1, 1, -5e12)
		Expect(Electrostatic(a, b)).To(Equal(Vec2{}))
	})
})

var _ = Describe("Body", func() {
	It("scales charge by the elementary charge", func() {
		b := NewBody(1, 2, 3, -2e12)
		Expect(b.Charge).To(BeNumerically("~", -2e12*ElementaryCharge, 1e-20))
		Expect(b.Force).To(Equal(Vec2{}))
	})

	It("builds an unscaled origin body", func() {
		Expect(Origin()).To(Equal(Body{}))
	})

	It("adds a seed onto the force", func() {
		b := NewBody(0, 0, 1, 0).WithSeed(Vec2{0, 0.05}).WithSeed(Vec2{1, 0})
		Expect(b.Force).To(Equal(Vec2{1, 0.05}))
	})
})

var _ = Describe("Vec2", func() {
	It("computes dot products and squared norms", func() {
		a := Vec2{3, 4}
		b := Vec2{-2, 0.5}
		Expect(a.Dot(b)).To(Equal(-4.0))
		Expect(a.NormSquared()).To(Equal(25.0))
		Expect(a.Norm()).To(Equal(5.0))
	})

	It("treats NaN and Inf as non-finite", func() {
		Expect(Vec2{1, 2}.IsFinite()).To(BeTrue())
		Expect(Vec2{math.NaN(), 0}.IsFinite()).To(BeFalse())
		Expect(Vec2{0, math.Inf(-1)}.IsFinite()).To(BeFalse())
	})
})

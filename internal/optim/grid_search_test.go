package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/orbitsim/internal/config"
	. "github.com/onsi/gomega"
)

func drifter(params map[string]float64) (*config.Config, error) {
	cfg := &config.Config{
		Name: "drifter", Ticks: 5, RecordEvery: 1,
		Bodies: []config.BodyConfig{
			{X: 0, Y: 0, Mass: 1, SeedForce: config.VecConfig{Y: 1}},
		},
	}
	return cfg, Apply(cfg, params)
}

func TestGridSearchPicksSmallestSeed(t *testing.T) {
	g := NewWithT(t)

	gs := NewGridSearch([]string{SeedScale}, [][]float64{{0.3, 0.1, 0.2}})
	params, val, err := gs.Search(context.Background(), drifter, "max_speed")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(params).To(HaveKeyWithValue(SeedScale, 0.1))
	g.Expect(val).To(BeNumerically("~", 0.1, 1e-12))
}

func TestGridSearchTwoParams(t *testing.T) {
	g := NewWithT(t)

	gs := NewGridSearch(
		[]string{SeedScale, MassScale},
		[][]float64{{2, 0.5}, {1, 3}},
	)
	params, _, err := gs.Search(context.Background(), drifter, "max_speed")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(params).To(HaveLen(2))
	g.Expect(params[SeedScale]).To(Equal(0.5))
}

func TestGridSearchNoCandidate(t *testing.T) {
	g := NewWithT(t)

	gs := NewGridSearch([]string{SeedScale}, [][]float64{{1}})
	_, _, err := gs.Search(context.Background(), drifter, "no_such_metric")
	g.Expect(errors.Is(err, ErrNoCandidate)).To(BeTrue())
}

func TestGridSearchCanceled(t *testing.T) {
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gs := NewGridSearch([]string{SeedScale}, [][]float64{{1, 2}})
	_, _, err := gs.Search(ctx, drifter, "max_speed")
	g.Expect(errors.Is(err, context.Canceled)).To(BeTrue())
}

func TestApply(t *testing.T) {
	g := NewWithT(t)

	cfg := config.GetPreset("atom")
	err := Apply(cfg, map[string]float64{ChargeScale: 2, SeedScale: -1})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Bodies[0].Charge).To(Equal(4e12))
	g.Expect(cfg.Bodies[1].SeedForce.Y).To(Equal(-0.05))

	err = Apply(cfg, map[string]float64{"gravity": 2})
	g.Expect(errors.Is(err, ErrUnknownParam)).To(BeTrue())
}

func TestLinspace(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Linspace(0, 1, 5)).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
	g.Expect(Linspace(3, 9, 1)).To(Equal([]float64{3}))
}

package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period float64
		n      int
	}{
		{"period 16", 16, 128},
		{"period 32", 32, 256},
		{"period 8", 8, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]float64, tt.n)
			for i := range data {
				data[i] = 500 + 40*math.Sin(2*math.Pi*float64(i)/tt.period)
			}
			got := DominantPeriod(data)
			if math.Abs(got-tt.period) > 1e-9 {
				t.Errorf("expected period %v, got %v", tt.period, got)
			}
		})
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	data := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	if got := DominantPeriod(data); got != 0 {
		t.Errorf("expected 0 for constant series, got %v", got)
	}
	if got := DominantPeriod(nil); got != 0 {
		t.Errorf("expected 0 for empty series, got %v", got)
	}
}

func TestDivergeSingleBody(t *testing.T) {
	u := physics.New()
	u.AddBody(physics.NewBody(10, 10, 1, 0).WithSeed(physics.Vec2{X: 1, Y: 0}))

	d, err := Diverge(u, 0, 0.5, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Separation) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(d.Separation))
	}
	for i, s := range d.Separation {
		if math.Abs(s-0.5) > 1e-9 {
			t.Errorf("tick %d: expected separation 0.5, got %v", i+1, s)
		}
	}
	if math.Abs(d.Rate) > 1e-9 {
		t.Errorf("expected zero rate, got %v", d.Rate)
	}
	if u.Ticks() != 0 {
		t.Errorf("source universe advanced to tick %d", u.Ticks())
	}
}

func TestDivergeErrors(t *testing.T) {
	u := physics.New()
	u.AddBody(physics.NewBody(0, 0, 1, 0))

	if _, err := Diverge(u, 3, 1e-3, 10); !errors.Is(err, ErrBodyIndex) {
		t.Errorf("expected ErrBodyIndex, got %v", err)
	}
	if _, err := Diverge(u, 0, 0, 10); !errors.Is(err, ErrPerturbation) {
		t.Errorf("expected ErrPerturbation, got %v", err)
	}
	if _, err := Diverge(u, 0, math.NaN(), 10); !errors.Is(err, ErrPerturbation) {
		t.Errorf("expected ErrPerturbation for NaN, got %v", err)
	}
}

func TestTrackStopsAtNonFinite(t *testing.T) {
	frames := []sim.Frame{
		{Tick: 0, Bodies: []physics.Body{{Pos: physics.Vec2{X: 1, Y: 2}}}},
		{Tick: 1, Bodies: []physics.Body{{Pos: physics.Vec2{X: 3, Y: 4}}}},
		{Tick: 2, Bodies: []physics.Body{{Pos: physics.Vec2{X: math.NaN(), Y: 4}}}},
		{Tick: 3, Bodies: []physics.Body{{Pos: physics.Vec2{X: 5, Y: 6}}}},
	}

	xs, ys := Track(frames, 0)
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("expected 2 samples, got %d/%d", len(xs), len(ys))
	}
	if xs[1] != 3 || ys[1] != 4 {
		t.Errorf("unexpected second sample (%v, %v)", xs[1], ys[1])
	}

	if xs, _ := Track(frames, 1); len(xs) != 0 {
		t.Errorf("expected no samples for missing body, got %d", len(xs))
	}
}

package sim

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/physics"
)

func TestFrame_IsValid(t *testing.T) {
	ok := physics.Body{Pos: physics.Vec2{X: 1, Y: 2}}
	tests := []struct {
		name    string
		bodies  []physics.Body
		invalid int
	}{
		{"empty", nil, -1},
		{"normal", []physics.Body{ok, ok}, -1},
		{"NaN position", []physics.Body{ok, {Pos: physics.Vec2{X: math.NaN()}}}, 1},
		{"+Inf force", []physics.Body{{Force: physics.Vec2{Y: math.Inf(1)}}, ok}, 0},
		{"-Inf position", []physics.Body{ok, ok, {Pos: physics.Vec2{Y: math.Inf(-1)}}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Frame{Bodies: tt.bodies}
			if got := f.FirstInvalid(); got != tt.invalid {
				t.Errorf("FirstInvalid() = %d, want %d", got, tt.invalid)
			}
			if got := f.IsValid(); got != (tt.invalid < 0) {
				t.Errorf("IsValid() = %v, want %v", got, tt.invalid < 0)
			}
		})
	}
}

func TestFrame_Clone(t *testing.T) {
	f := Frame{Tick: 3, Bodies: []physics.Body{{Mass: 1}}}
	c := f.Clone()
	c.Bodies[0].Mass = 99
	if f.Bodies[0].Mass != 1 {
		t.Error("Clone did not copy bodies")
	}
	if c.Tick != 3 {
		t.Errorf("Clone tick = %d, want 3", c.Tick)
	}
}

func TestResult_FinalEmpty(t *testing.T) {
	r := &Result{}
	if f := r.Final(); f.Tick != 0 || f.Bodies != nil {
		t.Errorf("expected zero frame, got %+v", f)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ticks <= 0 {
		t.Error("DefaultConfig has invalid Ticks")
	}
	if cfg.RecordEvery <= 0 {
		t.Error("DefaultConfig has invalid RecordEvery")
	}
	if cfg.ValidateState {
		t.Error("DefaultConfig should not validate state")
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Tick: 150, Body: 2, Wrapped: ErrInvalidState}
	expected := "tick 150 body 2: sim: invalid state (NaN or Inf detected)"
	if err.Error() != expected {
		t.Errorf("StepError.Error() = %q, want %q", err.Error(), expected)
	}
}

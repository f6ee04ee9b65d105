package sim

import "github.com/san-kum/orbitsim/internal/physics"

// Frame is a snapshot of every body after a tick. Tick 0 is the initial layout.
type Frame struct {
	Tick   uint64
	Bodies []physics.Body
}

func (f Frame) Clone() Frame {
	c := make([]physics.Body, len(f.Bodies))
	copy(c, f.Bodies)
	return Frame{Tick: f.Tick, Bodies: c}
}

// IsValid reports whether every position and force is finite.
func (f Frame) IsValid() bool {
	return f.FirstInvalid() < 0
}

// FirstInvalid returns the index of the first body holding NaN or Inf, or -1.
func (f Frame) FirstInvalid() int {
	for i, b := range f.Bodies {
		if !b.Pos.IsFinite() || !b.Force.IsFinite() {
			return i
		}
	}
	return -1
}

// Metric reduces the frames of a run to a single number. Observe sees every
// tick, including the initial frame. The frame's body slice is reused between
// calls and must not be retained.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer sees the same reused frame as metrics.
type Observer interface {
	OnTick(f Frame)
}

type Config struct {
	Ticks         int
	RecordEvery   int
	Seed          int64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Ticks:       2000,
		RecordEvery: 10,
	}
}

type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	TicksTaken int
	Errors     []error
}

// Final returns the last recorded frame.
func (r *Result) Final() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

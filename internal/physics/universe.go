package physics

// Universe owns an ordered set of bodies and a tick counter. It is not safe
// for concurrent use.
type Universe struct {
	bodies []Body
	ticks  uint64
}

func New() *Universe {
	return &Universe{bodies: make([]Body, 0)}
}

// AddBody appends a copy of b. Bodies are never removed.
func (u *Universe) AddBody(b Body) {
	u.bodies = append(u.bodies, b)
}

// Tick advances the simulation one step. Every ordered pair (i, j) with i != j
// adds Gravity(i, j) and then Electrostatic(i, j) onto body i's accumulated
// force, then every body moves by its force. Positions do not change until all
// pairs are folded. The two terms are added one at a time, never as their
// sum, since the rounding of the two differs.
func (u *Universe) Tick() {
	u.ticks++

	n := len(u.bodies)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			a, b := u.bodies[i], u.bodies[j]
			u.bodies[i].Force = u.bodies[i].Force.Add(Gravity(a, b))
			u.bodies[i].Force = u.bodies[i].Force.Add(Electrostatic(a, b))
		}
	}

	for i := range u.bodies {
		u.bodies[i].advance()
	}
}

// Bodies returns a copy of the current bodies in insertion order.
func (u *Universe) Bodies() []Body {
	out := make([]Body, len(u.bodies))
	copy(out, u.bodies)
	return out
}

// Body returns the body at index i.
func (u *Universe) Body(i int) Body { return u.bodies[i] }

func (u *Universe) Len() int { return len(u.bodies) }

// Ticks returns how many times Tick has run.
func (u *Universe) Ticks() uint64 { return u.ticks }

// Clone returns an independent copy, including the tick counter.
func (u *Universe) Clone() *Universe {
	return &Universe{bodies: u.Bodies(), ticks: u.ticks}
}

// AppendBodies appends the current bodies to dst and returns the result.
func (u *Universe) AppendBodies(dst []Body) []Body {
	return append(dst, u.bodies...)
}

package physics

const (
	G                = 6.67430e-11 // gravitational constant
	Epsilon0         = 8.85418e-12 // vacuum permittivity
	ElementaryCharge = 1.60217e-19
)

// Body is a point particle. Force is not an instantaneous force: it is the
// displacement applied to Pos every tick and it keeps accumulating across
// ticks without ever being reset.
type Body struct {
	Pos    Vec2
	Force  Vec2
	Mass   float64
	Charge float64
}

// NewBody places a body at (x, y). charge is a count of elementary charges and
// is stored scaled by ElementaryCharge.
func NewBody(x, y, mass, charge float64) Body {
	return Body{
		Pos:    Vec2{x, y},
		Mass:   mass,
		Charge: charge * ElementaryCharge,
	}
}

// Origin returns a massless, uncharged body at (0, 0).
func Origin() Body {
	return Body{}
}

// WithSeed returns a copy of b whose accumulated force starts at seed.
func (b Body) WithSeed(seed Vec2) Body {
	b.Force = b.Force.Add(seed)
	return b
}

func (b *Body) advance() {
	b.Pos = b.Pos.Add(b.Force)
}

package physics

import "math"

// coulomb is 1/(4*pi*eps0).
var coulomb = 1.0 / (4.0 * math.Pi * Epsilon0)

// Gravity returns the pull of b on a. The scalar G*ma*mb/d^2 multiplies the
// raw separation b-a, not a unit vector, so the applied magnitude falls off
// as 1/d. Coincident positions yield Inf or NaN.
func Gravity(a, b Body) Vec2 {
	d := b.Pos.Sub(a.Pos)
	return d.Scale(G * a.Mass * b.Mass / d.NormSquared())
}

// Electrostatic returns the Coulomb force of b on a along the raw separation
// a-b. Like charges give a vector pointing away from b.
func Electrostatic(a, b Body) Vec2 {
	d := a.Pos.Sub(b.Pos)
	return d.Scale(coulomb * (a.Charge * b.Charge / d.NormSquared()))
}

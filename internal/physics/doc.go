// Package physics is the charged-particle core: point bodies that attract each
// other by gravity and push or pull each other by Coulomb force.
//
//   - [Body]: position, accumulated force, mass and charge
//   - [Gravity], [Electrostatic]: pairwise force laws
//   - [Universe]: owns the bodies and advances them with [Universe.Tick]
//
// # Integration Rule
//
// There is no time step, velocity or acceleration. Each tick folds every
// pairwise force into the body's Force field and then moves the body by that
// field. Force is never reset, so it behaves like a velocity that the force
// laws keep nudging:
//
//	u := physics.New()
//	u.AddBody(physics.NewBody(500, 500, 20000, 0))
//	u.AddBody(physics.NewBody(540, 500, 8000, -2e12).WithSeed(physics.Vec2{Y: 0.05}))
//	u.Tick()
//
// # Degenerate Input
//
// Two bodies at the same position divide by zero. The resulting Inf or NaN is
// not intercepted and stays in the affected bodies for every later tick.
package physics

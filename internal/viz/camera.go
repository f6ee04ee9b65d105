package viz

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
)

// Camera maps world positions to canvas dots. Offset is added to positions
// before scaling and never touches the universe.
type Camera struct {
	Offset physics.Vec2
	Scale  float64 // world units per dot
}

func NewCamera() Camera {
	return Camera{Scale: 1}
}

// Project returns the dot coordinates of p and whether it is finite.
func (c Camera) Project(p physics.Vec2) (int, int, bool) {
	q := p.Add(c.Offset).Scale(1 / c.Scale)
	if !q.IsFinite() || math.Abs(q.X) > math.MaxInt32 || math.Abs(q.Y) > math.MaxInt32 {
		return 0, 0, false
	}
	return int(math.Round(q.X)), int(math.Round(q.Y)), true
}

// Pan moves the view by (dx, dy) dots.
func (c *Camera) Pan(dx, dy float64) {
	c.Offset = c.Offset.Add(physics.Vec2{X: -dx * c.Scale, Y: -dy * c.Scale})
}

// Zoom scales around the center of a w x h dot viewport.
func (c *Camera) Zoom(factor float64, w, h int) {
	center := physics.Vec2{X: float64(w) / 2, Y: float64(h) / 2}
	world := center.Scale(c.Scale).Sub(c.Offset)
	c.Scale /= factor
	c.Offset = center.Scale(c.Scale).Sub(world)
}

// Fit frames every finite body inside a w x h dot viewport with a margin.
func (c *Camera) Fit(bodies []physics.Body, w, h int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range bodies {
		if !b.Pos.IsFinite() {
			continue
		}
		minX, maxX = math.Min(minX, b.Pos.X), math.Max(maxX, b.Pos.X)
		minY, maxY = math.Min(minY, b.Pos.Y), math.Max(maxY, b.Pos.Y)
	}
	if math.IsInf(minX, 1) || w <= 0 || h <= 0 {
		return
	}

	span := math.Max((maxX-minX)/float64(w), (maxY-minY)/float64(h)) * 1.25
	if span <= 0 {
		span = 1
	}
	c.Scale = span

	mid := physics.Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	c.Offset = physics.Vec2{X: float64(w) / 2 * span, Y: float64(h) / 2 * span}.Sub(mid)
}

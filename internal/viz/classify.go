package viz

import "github.com/san-kum/orbitsim/internal/physics"

// HeavyMass is the mass from which a body is drawn as a nucleus.
const HeavyMass = 10000.0

type Category int

const (
	Empty Category = iota
	Heavy
	Negative
	Positive
)

func (c Category) String() string {
	switch c {
	case Heavy:
		return "heavy"
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	}
	return "empty"
}

// Classify buckets a body for drawing: heavy bodies first, then the rest by
// charge sign. Zero charge counts as positive.
func Classify(b physics.Body) Category {
	if b.Mass >= HeavyMass {
		return Heavy
	}
	if b.Charge < 0 {
		return Negative
	}
	return Positive
}

// Census counts bodies per category.
func Census(bodies []physics.Body) map[Category]int {
	counts := make(map[Category]int, 3)
	for _, b := range bodies {
		counts[Classify(b)]++
	}
	return counts
}

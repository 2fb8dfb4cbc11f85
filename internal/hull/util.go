package hull

import "math"

const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. If
// we don't account for this, points sitting on a hull edge get promoted to
// vertices of absurdly thin triangles.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// cross returns the 2D cross product of the vectors a->b and a->p. It is
// positive when the triple makes a counterclockwise turn, negative for a
// clockwise turn, and zero when the three points are collinear.
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// leftOf reports whether p lies strictly to the left of the directed line
// a->b. Points within tolerance of the line count as on it, not left of
// it, so hull edges never collect their own collinear interior points.
func leftOf(a, b, p Point) bool {
	return cross(a, b, p) > Tolerance
}

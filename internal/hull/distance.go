package hull

import "math"

// DistanceToLine returns the unsigned perpendicular distance from p to the
// infinite line through a and b. The endpoints may be given in either
// order.
//
// When a and b coincide there is no line to measure against; the distance
// degrades to the plain Euclidean distance from p to a. That keeps the
// function total instead of leaking an Inf or NaN out of the division.
func DistanceToLine(a, b, p Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if Equal(dx, 0) && Equal(dy, 0) {
		return math.Hypot(a.X-p.X, a.Y-p.Y)
	}
	return math.Abs(dx*(a.Y-p.Y)-(a.X-p.X)*dy) / math.Hypot(dx, dy)
}

package hull

import "fmt"

// A 2D point. Points are plain values: the algorithm shuffles them around
// the buffer with swaps, and two points are the same exactly when their
// coordinates are. Nothing here relies on pointer identity.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Coincident reports whether p and q occupy the same location, within
// tolerance.
func (p Point) Coincident(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Before orders points lexicographically, x before y. The y tie-break
// matters for vertical point sets, where every point shares the minimum x
// and a bare min-x scan could not tell the two extremes apart.
func (p Point) Before(q Point) bool {
	if Equal(p.X, q.X) {
		return p.Y < q.Y
	}
	return p.X < q.X
}

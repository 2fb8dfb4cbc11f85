// A planar convex hull package for Go.
//
// This package takes a set of 2D points and returns the subset of points
// forming their convex hull, found by QuickHull-style recursive
// partitioning. The result is in discovery order, not boundary order.
package quickhull

import "github.com/convexlabs/quickhull/internal/hull"

type Point = hull.Point

// ConvexHull returns the hull vertices of the given points.
//
// Degenerate inputs are not errors: fewer than two points yield an empty
// hull, coincident points collapse to a single vertex, and collinear
// points yield their two extremes. The input slice is copied once and
// never modified.
func ConvexHull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	buffer := make([]Point, len(points))
	copy(buffer, points)
	return hull.QuickHull(buffer), nil
}

package hull

// QuickHull computes the convex hull of the points in the buffer and
// returns the hull vertices in discovery order, which is not boundary
// order. The buffer is partitioned in place; callers who care about the
// original ordering must pass a copy.
//
// The classical algorithm: the two extreme points span a baseline that is
// guaranteed to be on the hull, the remaining points are split by which
// side of the baseline they fall on, and each side is refined recursively
// around its farthest point. Points on the baseline itself are interior to
// a hull edge and are dropped, so collinear input yields exactly its two
// extremes.
func QuickHull(points []Point) []Point {
	if len(points) < 2 {
		return nil
	}

	// Baseline endpoints: the lexicographically smallest and largest
	// points. Both are always hull vertices.
	lo, hi := 0, 0
	for i, p := range points {
		if p.Before(points[lo]) {
			lo = i
		}
		if points[hi].Before(p) {
			hi = i
		}
	}
	a, b := points[lo], points[hi]
	if a.Coincident(b) {
		// Every point shares one location.
		return []Point{a}
	}

	hull := []Point{a, b}

	// Split the buffer around the baseline. After the two passes,
	// [0, upper) is strictly left of a->b, [upper, lower) is strictly left
	// of b->a, and the tail holds the on-line points, including a and b
	// themselves, which no recursive call will look at again.
	n := len(points)
	upper := partition(points, 0, n-1, func(p Point) bool { return leftOf(a, b, p) })
	lower := partition(points, upper, n-1, func(p Point) bool { return leftOf(b, a, p) })

	findHull(points, 0, upper-1, a, b, &hull)
	findHull(points, upper, lower-1, b, a, &hull)
	return hull
}

// findHull discovers the hull vertices beyond the directed segment a->b.
// On entry every point in [left, right] lies strictly left of a->b. The
// call owns that subrange exclusively and reorders it with swaps; sibling
// calls receive disjoint subranges, so no point is ever examined by two
// branches of the recursion.
func findHull(points []Point, left, right int, a, b Point, hull *[]Point) {
	if left > right {
		return
	}

	// The point farthest from the baseline is always a hull vertex. Swap
	// it to the end of the range so the partitions below only have to
	// walk [left, right-1].
	farthest := FarthestFrom(points, left, right, a, b)
	points[farthest], points[right] = points[right], points[farthest]
	pivot := points[right]
	*hull = append(*hull, pivot)

	// Points inside the triangle (a, pivot, b) can never be hull vertices.
	// The two partition passes strand them past the second split, where
	// neither recursive call will reach them.
	split := partition(points, left, right-1, func(p Point) bool { return leftOf(a, pivot, p) })
	outer := partition(points, split, right-1, func(p Point) bool { return leftOf(pivot, b, p) })

	findHull(points, left, split-1, a, pivot, hull)
	findHull(points, split, outer-1, pivot, b, hull)
}

// partition reorders [left, right] so the points satisfying keep come
// first, preserving nothing else about the order. Single pass, swap based.
// Returns the index one past the kept region.
func partition(points []Point, left, right int, keep func(Point) bool) int {
	split := left
	for i := left; i <= right; i++ {
		if keep(points[i]) {
			points[i], points[split] = points[split], points[i]
			split++
		}
	}
	return split
}

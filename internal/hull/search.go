package hull

// FarthestFrom returns the index in [left, right] of the point with the
// greatest perpendicular distance to the line through a and b. Ties keep
// the first maximum in index order, so the search is deterministic for a
// given buffer layout.
//
// The range must be non-empty. Callers always partition before they
// search, so an empty range here is a bug in the recursion, not bad input.
func FarthestFrom(points []Point, left, right int, a, b Point) int {
	if left > right {
		fatalf("farthest point search on empty range [%d, %d]", left, right)
	}

	maxIndex := left
	maxDist := DistanceToLine(a, b, points[left])
	for i := left + 1; i <= right; i++ {
		if d := DistanceToLine(a, b, points[i]); d > maxDist {
			maxDist = d
			maxIndex = i
		}
	}
	return maxIndex
}

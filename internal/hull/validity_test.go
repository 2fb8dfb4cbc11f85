package hull

// This contains no actual tests. It is just a helper for checking that a
// computed hull is valid for its input.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid. The rules are:
// 1. Every hull vertex is one of the input points (no fabricated
//    coordinates).
// 2. No vertex appears twice.
// 3. Ordered around its centroid, the hull is convex.
// 4. Every input point lies inside or on the ordered hull.
func AssertValidHull(t *testing.T, input, hullPoints []Point) {
	for _, v := range hullPoints {
		found := false
		for _, p := range input {
			if v.Coincident(p) {
				found = true
				break
			}
		}
		require.True(t, found, "hull vertex %s is not an input point", v)
	}

	for i, v := range hullPoints {
		for _, w := range hullPoints[i+1:] {
			require.False(t, v.Coincident(w), "hull vertex %s emitted twice", v)
		}
	}

	ordered := orderByAngle(hullPoints)
	if len(ordered) < 3 {
		return
	}

	n := len(ordered)
	for i := range ordered {
		a := ordered[i]
		b := ordered[(i+1)%n]
		c := ordered[(i+2)%n]
		require.True(t, cross(a, b, c) > -Tolerance, "hull is not convex at %s", b)
	}

	for _, p := range input {
		for i := range ordered {
			a := ordered[i]
			b := ordered[(i+1)%n]
			require.True(t, cross(a, b, p) > -Tolerance,
				"input point %s lies outside hull edge %s-%s", p, a, b)
		}
	}
}

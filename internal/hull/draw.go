package hull

import (
	"math"
	"sort"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/convexlabs/quickhull/internal/dbg"
)

const drawPadding = 20

// Draw renders the input points and the hull to a PNG at the given path.
// Input points are grey dots, hull vertices are green and labeled, and the
// hull boundary is stroked in cyan. Scale is pixels per coordinate unit.
func Draw(points, hullPoints []Point, scale float64, path string) error {
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", scale)
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Input points
	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
	}
	c.Fill()

	// Hull boundary
	ordered := orderByAngle(hullPoints)
	if len(ordered) > 1 {
		c.MoveTo(ordered[0].X, ordered[0].Y)
		for _, p := range ordered[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetLineWidth(2)
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Hull vertices
	c.SetRGB(0, 1, 0)
	for _, p := range ordered {
		c.DrawCircle(p.X, p.Y, 3/scale)
	}
	c.Fill()

	// Labels are drawn in device space; text under the flipped transform
	// would render upside down.
	c.Identity()
	c.SetRGB(1, 1, 1)
	for _, p := range ordered {
		dx := (p.X-minX)*scale + drawPadding
		dy := float64(height) - ((p.Y-minY)*scale + drawPadding)
		c.DrawString(dbg.Name(p), dx+5, dy-5)
	}

	return c.SavePNG(path)
}

// orderByAngle returns the hull vertices sorted counterclockwise around
// their centroid. The builder emits vertices in recursion order; drawing
// and containment checks need boundary order, and for a convex vertex set
// the centroid is interior, so an angular sort recovers it.
func orderByAngle(points []Point) []Point {
	ordered := append([]Point(nil), points...)
	if len(ordered) < 3 {
		return ordered
	}
	var cx, cy float64
	for _, p := range ordered {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(ordered))
	cy /= float64(len(ordered))
	sort.Slice(ordered, func(i, j int) bool {
		return math.Atan2(ordered[i].Y-cy, ordered[i].X-cx) < math.Atan2(ordered[j].Y-cy, ordered[j].X-cx)
	})
	return ordered
}

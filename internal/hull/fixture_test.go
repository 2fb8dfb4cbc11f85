package hull

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// Point-set fixtures live in fixtures/ as SVG files, one <polygon> each,
// and are loaded by base name. SVG keeps the fixtures viewable in a
// browser while editing them; only the polygon's vertex list is read, and
// winding order doesn't matter since a hull ignores input order anyway.
// Fixtures are trusted input, so any parse problem kills the test run.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Fixture %q must contain exactly one polygon, found %d", name, len(polygons))
	}

	pairs := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pairs))
	for _, pair := range pairs {
		points = append(points, parseFixturePoint(name, pair))
	}
	return points
}

// parseFixturePoint reads one "x,y" vertex from a polygon's points
// attribute.
func parseFixturePoint(name, pair string) Point {
	coords := strings.Split(pair, ",")
	if len(coords) != 2 {
		log.Fatalf("Fixture %q has a malformed vertex %q", name, pair)
	}
	x, err := strconv.ParseFloat(coords[0], 64)
	if err != nil {
		log.Fatalf("Fixture %q has a bad x value %q: %v", name, coords[0], err)
	}
	y, err := strconv.ParseFloat(coords[1], 64)
	if err != nil {
		log.Fatalf("Fixture %q has a bad y value %q: %v", name, coords[1], err)
	}
	return Point{x, y}
}

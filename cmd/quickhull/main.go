package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/convexlabs/quickhull"
	"github.com/convexlabs/quickhull/internal/hull"
)

// Driver for the hull library. Input on stdin (or --input) is a point
// count followed by that many "x y" coordinate pairs, separated by any
// whitespace. Output is a header followed by the hull vertices in
// discovery order. Nothing is printed until the hull is computed, so a
// malformed input never produces a partial vertex list.
var (
	inputPath  = kingpin.Flag("input", "Read points from a file instead of stdin.").Short('i').String()
	drawPath   = kingpin.Flag("draw", "Render the points and hull to a PNG file.").String()
	drawScale  = kingpin.Flag("scale", "Pixels per coordinate unit for --draw.").Default("32").Float64()
	catDrawing = kingpin.Flag("cat", "Print the rendered PNG to the terminal (requires --draw).").Bool()
)

func main() {
	kingpin.Parse()
	in := io.Reader(os.Stdin)
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	if err := run(in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	points, err := readPoints(in)
	if err != nil {
		return err
	}

	vertices, err := quickhull.ConvexHull(points)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Points forming the convex hull:")
	for _, p := range vertices {
		fmt.Fprintln(out, p)
	}

	if *drawPath != "" {
		if err := hull.Draw(points, vertices, *drawScale, *drawPath); err != nil {
			return err
		}
		if *catDrawing {
			imgcat.CatFile(*drawPath, os.Stdout)
		}
	}
	return nil
}

// readPoints parses the count-then-pairs protocol. A count that doesn't
// parse, a negative count, a coordinate that doesn't parse, or fewer pairs
// than the count promises are all malformed input.
func readPoints(in io.Reader) ([]quickhull.Point, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	token, ok := next()
	if !ok {
		return nil, errors.New("missing point count")
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid point count %q", token)
	}
	if n < 0 {
		return nil, errors.Errorf("negative point count %d", n)
	}

	points := make([]quickhull.Point, 0, n)
	for i := 0; i < n; i++ {
		x, err := nextCoordinate(next, "x", i)
		if err != nil {
			return nil, err
		}
		y, err := nextCoordinate(next, "y", i)
		if err != nil {
			return nil, err
		}
		points = append(points, quickhull.Point{X: x, Y: y})
	}
	return points, scanner.Err()
}

func nextCoordinate(next func() (string, bool), axis string, i int) (float64, error) {
	token, ok := next()
	if !ok {
		return 0, errors.Errorf("missing %s coordinate for point %d", axis, i+1)
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s coordinate for point %d", axis, i+1)
	}
	return v, nil
}

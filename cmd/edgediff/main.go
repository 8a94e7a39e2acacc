// Command edgediff compares two example jigsaw edges. It prints the area
// under the first edge and the area between both edges, and draws the edges,
// their control points, and their intersections to a PNG image.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/colornames"

	"honnef.co/go/edgediff"
	"honnef.co/go/edgediff/plot"
)

// knob is a unit edge with a single round knob.
var knob = edgediff.CatmullRom{
	edgediff.Pt(0.0, 0.0),
	edgediff.Pt(0.4, 0.0),
	edgediff.Pt(0.3, 0.2),
	edgediff.Pt(0.5, 0.3),
	edgediff.Pt(0.7, 0.2),
	edgediff.Pt(0.6, 0.0),
	edgediff.Pt(1.0, 0.0),
}

// squareKnob is a flatter, wider variant of knob that crosses it several
// times.
var squareKnob = edgediff.CatmullRom{
	edgediff.Pt(0.0, 0.0),
	edgediff.Pt(0.35, 0.05),
	edgediff.Pt(0.35, 0.25),
	edgediff.Pt(0.5, 0.25),
	edgediff.Pt(0.65, 0.25),
	edgediff.Pt(0.65, 0.05),
	edgediff.Pt(1.0, 0.0),
}

func main() {
	out := flag.String("o", "0.png", "Name of the PNG output file")
	svgOut := flag.String("svg", "", "Name of an additional SVG output file")
	steps := flag.Int("n", edgediff.DefaultStepsPerSegment, "Number of samples per spline segment")
	width := flag.Int("w", 640, "Image width in pixels")
	height := flag.Int("h", 480, "Image height in pixels")
	verbose := flag.Bool("v", false, "Log debug output to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("edgediff: ")
	if *verbose {
		edgediff.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	path1, err := knob.Sample(*steps)
	if err != nil {
		log.Fatal(err)
	}
	path2, err := squareKnob.Sample(*steps)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Area: %g\n", path1.SignedArea())
	area, err := edgediff.AreaBetweenNormalized(path1, path2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Area between edges: %g\n", area)

	xs := edgediff.FindIntersections(path1, path2)
	edgediff.SortIntersections(xs)
	on1, on2 := edgediff.IntersectionPoints(path1, path2, xs)

	p := plot.New(plot.Options{Width: *width, Height: *height})
	p.Markers(knob, colornames.Red)
	p.Polyline(path1, colornames.Blue)
	p.Polyline(path2, colornames.Green)
	p.Rings(on1, colornames.Purple)
	p.Rings(on2, colornames.Purple)
	p.Label(fmt.Sprintf("area between edges: %.4f", area))

	if err := writeFile(*out, p.EncodePNG); err != nil {
		log.Fatal(err)
	}
	if *svgOut != "" {
		err := writeFile(*svgOut, func(w io.Writer) error {
			return p.WriteSVG(w, plot.SVGOptions{MaxPrecision: 5})
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}

// writeFile creates the named file and writes to it with fn.
func writeFile(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

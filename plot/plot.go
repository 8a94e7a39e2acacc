// Package plot draws paths and points produced by package edgediff as
// simple charts, either as raster images or as SVG documents.
//
// A [Plot] collects series of points: polylines, filled markers, and
// hollow rings. Data coordinates are mapped to the image with y pointing up.
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"honnef.co/go/edgediff"
)

// DefaultBounds is the data range shown by a plot without points when
// [Options.Bounds] is the zero value. It fits unit edges with a knob on the
// positive y side.
var DefaultBounds = edgediff.Rect{X0: -0.1, Y0: -0.3, X1: 1.1, Y1: 1.0}

// fitPadding is the fraction of the data's extents added on each side when
// fitting the viewport to the data.
const fitPadding = 0.1

// Options configures a [Plot]. Zero values select the defaults noted on
// each field.
type Options struct {
	// Image size in pixels. Defaults to 640×480.
	Width, Height int
	// Data range to show. Defaults to the bounding box of all series, padded
	// by 10% on each side, or to [DefaultBounds] if there are no points.
	Bounds edgediff.Rect
	// Distance between the plotting area and the image border, in pixels.
	// Defaults to 30.
	Margin int
	// Width of polylines in pixels. Defaults to 2.
	StrokeWidth float64
	// Radius of markers and rings in pixels. Defaults to 5.
	MarkerRadius float64
	// Defaults to white.
	Background color.Color
	// Colour of the frame, the axes, and text. Defaults to black.
	Foreground color.Color
}

func (opts Options) withDefaults() Options {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	if opts.Margin <= 0 {
		opts.Margin = 30
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 2
	}
	if opts.MarkerRadius <= 0 {
		opts.MarkerRadius = 5
	}
	if opts.Background == nil {
		opts.Background = colornames.White
	}
	if opts.Foreground == nil {
		opts.Foreground = colornames.Black
	}
	return opts
}

type seriesKind int

const (
	polylineKind seriesKind = iota
	markersKind
	ringsKind
)

type series struct {
	kind  seriesKind
	pts   []edgediff.Point
	color color.Color
}

// Plot is a chart under construction. Series are drawn in the order they
// were added.
type Plot struct {
	opts   Options
	series []series
	label  string
}

// New returns an empty plot.
func New(opts Options) *Plot {
	return &Plot{opts: opts.withDefaults()}
}

// Polyline adds a line through pts.
func (p *Plot) Polyline(pts []edgediff.Point, c color.Color) {
	p.series = append(p.series, series{polylineKind, pts, c})
}

// Markers adds a filled disc at each of pts.
func (p *Plot) Markers(pts []edgediff.Point, c color.Color) {
	p.series = append(p.series, series{markersKind, pts, c})
}

// Rings adds a hollow circle at each of pts.
func (p *Plot) Rings(pts []edgediff.Point, c color.Color) {
	p.series = append(p.series, series{ringsKind, pts, c})
}

// Label sets a line of text drawn in the top left corner of the plot.
func (p *Plot) Label(s string) {
	p.label = s
}

// viewport returns the data range to draw.
func (p *Plot) viewport() edgediff.Rect {
	if p.opts.Bounds != (edgediff.Rect{}) {
		return p.opts.Bounds.Abs()
	}
	bbox := edgediff.EmptyRect()
	for _, s := range p.series {
		bbox = bbox.Union(edgediff.Path(s.pts).BoundingBox())
	}
	if bbox.IsEmpty() {
		return DefaultBounds
	}
	dx := bbox.Width() * fitPadding
	dy := bbox.Height() * fitPadding
	// A single point or an axis-parallel line has no extent to pad by.
	if dx == 0 {
		dx = 0.5
	}
	if dy == 0 {
		dy = 0.5
	}
	return bbox.Inflate(dx, dy)
}

// frame maps data coordinates in b to the plotting area of an image.
type frame struct {
	b             edgediff.Rect
	width, height float64
	margin        float64
}

func (p *Plot) frame() frame {
	return frame{
		b:      p.viewport(),
		width:  float64(p.opts.Width),
		height: float64(p.opts.Height),
		margin: float64(p.opts.Margin),
	}
}

// project maps a data point to pixel coordinates.
func (f frame) project(pt edgediff.Point) (float32, float32) {
	b := f.b
	m := f.margin
	w := f.width - 2*m
	h := f.height - 2*m
	x := m + (pt.X-b.X0)/b.Width()*w
	y := f.height - m - (pt.Y-b.Y0)/b.Height()*h
	return float32(x), float32(y)
}

// Image renders the plot.
func (p *Plot) Image() *image.RGBA {
	opts := p.opts
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(opts.Width, opts.Height)
	fill := func(c color.Color) {
		z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
		z.Reset(opts.Width, opts.Height)
	}

	f := p.frame()
	addAxes(z, f)
	fill(opts.Foreground)

	hw := float32(opts.StrokeWidth / 2)
	r := float32(opts.MarkerRadius)
	for _, s := range p.series {
		switch s.kind {
		case polylineKind:
			addPolyline(z, f, s.pts, hw)
		case markersKind:
			for _, pt := range s.pts {
				x, y := f.project(pt)
				addCircle(z, x, y, r, false)
			}
		case ringsKind:
			for _, pt := range s.pts {
				x, y := f.project(pt)
				addCircle(z, x, y, r, false)
				addCircle(z, x, y, r-hw, true)
			}
		default:
			panic("unreachable")
		}
		fill(s.color)
	}

	p.drawText(img, f.b)
	edgediff.Logger().Debug("rendered plot", "width", opts.Width, "height", opts.Height, "series", len(p.series), "bounds", f.b)
	return img
}

// EncodePNG renders the plot and writes it to w as a PNG image.
func (p *Plot) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.Image())
}

// addAxes adds the frame around the plotting area and the x and y axes, if
// they are in view.
func addAxes(z *vector.Rasterizer, f frame) {
	const hw = 0.5
	b := f.b
	corners := []edgediff.Point{
		edgediff.Pt(b.X0, b.Y0), edgediff.Pt(b.X1, b.Y0),
		edgediff.Pt(b.X1, b.Y1), edgediff.Pt(b.X0, b.Y1),
		edgediff.Pt(b.X0, b.Y0),
	}
	addPolyline(z, f, corners, hw)
	if b.Y0 < 0 && b.Y1 > 0 {
		addPolyline(z, f, []edgediff.Point{edgediff.Pt(b.X0, 0), edgediff.Pt(b.X1, 0)}, hw)
	}
	if b.X0 < 0 && b.X1 > 0 {
		addPolyline(z, f, []edgediff.Point{edgediff.Pt(0, b.Y0), edgediff.Pt(0, b.Y1)}, hw)
	}
}

// addPolyline adds the outline of a line through pts with half-width hw.
// Every segment becomes a quadrilateral and every vertex a disc, all with
// the same orientation so that overlaps don't cancel.
func addPolyline(z *vector.Rasterizer, f frame, pts []edgediff.Point, hw float32) {
	for i, pt := range pts {
		x1, y1 := f.project(pt)
		addCircle(z, x1, y1, hw, false)
		if i == 0 {
			continue
		}
		x0, y0 := f.project(pts[i-1])
		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x0-nx, y0-ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x1+nx, y1+ny)
		z.ClosePath()
	}
}

// addCircle adds a circle approximated by four cubic Béziers.
func addCircle(z *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	z.MoveTo(cx, cy-radius)
	if clockwise {
		z.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		z.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		z.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		z.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		z.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		z.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		z.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		z.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	z.ClosePath()
}

// drawText draws the label and the data range b at the corners of the
// plotting area.
func (p *Plot) drawText(img draw.Image, b edgediff.Rect) {
	opts := p.opts
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Foreground),
		Face: basicfont.Face7x13,
	}
	at := func(x, y int, s string) {
		d.Dot = fixed.P(x, y)
		d.DrawString(s)
	}
	m := opts.Margin
	below := opts.Height - m + 15
	at(m, below, formatTick(b.X0))
	right := formatTick(b.X1)
	at(opts.Width-m-d.MeasureString(right).Ceil(), below, right)
	at(2, opts.Height-m, formatTick(b.Y0))
	at(2, m+10, formatTick(b.Y1))
	if p.label != "" {
		at(m+5, m-8, p.label)
	}
}

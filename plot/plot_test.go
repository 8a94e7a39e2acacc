package plot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/colornames"

	"honnef.co/go/edgediff"
)

func testPlot() *Plot {
	p := New(Options{
		Width:       100,
		Height:      100,
		Margin:      10,
		Bounds:      edgediff.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1},
		StrokeWidth: 4,
	})
	p.Polyline([]edgediff.Point{edgediff.Pt(0.2, 0.5), edgediff.Pt(0.8, 0.5)}, colornames.Red)
	p.Markers([]edgediff.Point{edgediff.Pt(0.25, 0.25)}, colornames.Blue)
	p.Rings([]edgediff.Point{edgediff.Pt(0.75, 0.75)}, colornames.Purple)
	return p
}

func TestProject(t *testing.T) {
	f := testPlot().frame()
	tests := []struct {
		pt   edgediff.Point
		x, y float32
	}{
		{edgediff.Pt(0, 0), 10, 90},
		{edgediff.Pt(1, 1), 90, 10},
		{edgediff.Pt(0.5, 0.5), 50, 50},
		{edgediff.Pt(0.25, 0.75), 30, 30},
	}
	for _, tt := range tests {
		if x, y := f.project(tt.pt); x != tt.x || y != tt.y {
			t.Errorf("project(%v) = (%v, %v), want (%v, %v)", tt.pt, x, y, tt.x, tt.y)
		}
	}
}

func TestImage(t *testing.T) {
	img := testPlot().Image()
	if got := img.Bounds(); got != image.Rect(0, 0, 100, 100) {
		t.Fatalf("got bounds %v", got)
	}
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 5, 5, colornames.White},
		{"polyline", 50, 50, colornames.Red},
		{"polyline start", 26, 50, colornames.Red},
		{"marker", 30, 70, colornames.Blue},
		{"ring centre", 70, 30, colornames.White},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); !near(got, tt.want) {
			t.Errorf("%s: pixel (%d, %d) is %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if got := img.RGBAAt(74, 30); near(got, colornames.White) {
		t.Errorf("ring outline at (74, 30) wasn't drawn")
	}
}

// near reports whether a and b differ by at most 2 in each channel, allowing
// for rounding in the rasteriser's coverage computation.
func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return max(x, y)-min(x, y) <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestDefaults(t *testing.T) {
	p := New(Options{})
	if got := p.Image().Bounds(); got != image.Rect(0, 0, 640, 480) {
		t.Errorf("got bounds %v, want 640×480", got)
	}
	if got := p.viewport(); got != DefaultBounds {
		t.Errorf("got data bounds %v for empty plot, want %v", got, DefaultBounds)
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		add  func(p *Plot)
		want edgediff.Rect
	}{
		{
			name: "explicit bounds",
			opts: Options{Bounds: edgediff.Rect{X0: 1, Y0: 2, X1: -1, Y1: 0}},
			add: func(p *Plot) {
				p.Polyline([]edgediff.Point{edgediff.Pt(5, 5), edgediff.Pt(6, 6)}, colornames.Red)
			},
			want: edgediff.Rect{X0: -1, Y0: 0, X1: 1, Y1: 2},
		},
		{
			name: "fit to series",
			add: func(p *Plot) {
				p.Polyline([]edgediff.Point{edgediff.Pt(0, 0), edgediff.Pt(1, 0.5)}, colornames.Red)
				p.Markers([]edgediff.Point{edgediff.Pt(0.5, -0.5)}, colornames.Blue)
				p.Rings(nil, colornames.Purple)
			},
			want: edgediff.Rect{X0: -0.1, Y0: -0.6, X1: 1.1, Y1: 0.6},
		},
		{
			name: "flat line",
			add: func(p *Plot) {
				p.Polyline([]edgediff.Point{edgediff.Pt(0.2, 0.5), edgediff.Pt(0.8, 0.5)}, colornames.Red)
			},
			want: edgediff.Rect{X0: 0.14, Y0: 0, X1: 0.86, Y1: 1},
		},
		{
			name: "single point",
			add: func(p *Plot) {
				p.Markers([]edgediff.Point{edgediff.Pt(2, 3)}, colornames.Blue)
			},
			want: edgediff.Rect{X0: 1.5, Y0: 2.5, X1: 2.5, Y1: 3.5},
		},
		{
			name: "only empty series",
			add: func(p *Plot) {
				p.Polyline(nil, colornames.Red)
			},
			want: DefaultBounds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.opts)
			tt.add(p)
			if d := cmp.Diff(tt.want, p.viewport(), cmpopts.EquateApprox(0, 1e-12)); d != "" {
				t.Errorf("viewport mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestImageFit(t *testing.T) {
	p := New(Options{Width: 100, Height: 100, Margin: 10, StrokeWidth: 4})
	p.Polyline([]edgediff.Point{edgediff.Pt(10, 10), edgediff.Pt(20, 20)}, colornames.Red)

	f := p.frame()
	if x, y := f.project(edgediff.Pt(9, 9)); x != 10 || y != 90 {
		t.Errorf("corner of fitted viewport projects to (%v, %v), want (10, 90)", x, y)
	}
	// Data far outside of DefaultBounds still lands in the middle of the
	// image.
	if got := p.Image().RGBAAt(50, 50); !near(got, colornames.Red) {
		t.Errorf("pixel (50, 50) is %v, want %v", got, colornames.Red)
	}
	s := p.SVG(SVGOptions{MaxPrecision: 3})
	if want := `viewBox="9 -21 12 12"`; !strings.Contains(s, want) {
		t.Errorf("SVG output lacks %q:\n%s", want, s)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	p := testPlot()
	p.Label("area: 0.5")
	if err := p.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 100, 100) {
		t.Errorf("got bounds %v", got)
	}
}

func TestSVG(t *testing.T) {
	s := testPlot().SVG(SVGOptions{})
	for _, want := range []string{
		`viewBox="0 -1 1 1"`,
		`<path d="M0.2,0.5 L0.8,0.5" fill="none" stroke="#ff0000"`,
		`<circle cx="0.25" cy="0.25" r="0.0625" fill="#0000ff" />`,
		`<circle cx="0.75" cy="0.75" r="0.0625" fill="none" stroke="#800080"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG output lacks %q:\n%s", want, s)
		}
	}
	if !strings.HasSuffix(s, "</svg>\n") {
		t.Errorf("SVG output isn't terminated:\n%s", s)
	}
}

func TestSVGPrecision(t *testing.T) {
	p := New(Options{Width: 100, Height: 100, Margin: 10, Bounds: edgediff.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}})
	p.Polyline([]edgediff.Point{edgediff.Pt(1.0/3, 0.5), edgediff.Pt(1, 2.0/3)}, colornames.Black)
	s := p.SVG(SVGOptions{MaxPrecision: 3})
	if want := `d="M0.333,0.5 L1,0.667"`; !strings.Contains(s, want) {
		t.Errorf("SVG output lacks %q:\n%s", want, s)
	}
}

package plot

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/edgediff"
)

// SVGOptions specifies optional settings for [Plot.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG returns the plot as an SVG document.
//
// See [Plot.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p *Plot) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the plot to w as an SVG document. Coordinates are in data
// space, flipped so that y points up; the document's size is the image size
// of the plot's [Options] and its view box is the same data range that
// [Plot.Image] shows.
//
// The text label isn't included.
func (p *Plot) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}

	b := p.viewport()
	// One pixel in data units, used for stroke widths and marker radii.
	px := b.Width() / float64(p.opts.Width-2*p.opts.Margin)

	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s">`+"\n",
		p.opts.Width, p.opts.Height,
		format(b.X0), format(-b.Y1), format(b.Width()), format(b.Height()))
	writef(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`+"\n",
		format(b.X0), format(-b.Y1), format(b.Width()), format(b.Height()), hexColor(p.opts.Background))
	writef(`<g transform="scale(1,-1)">`+"\n")

	line := func(pts []edgediff.Point, c color.Color, width float64) {
		writef(`<path d="`)
		for i, pt := range pts {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			} else {
				writef(" ")
			}
			writef("%s%s,%s", cmd, format(pt.X), format(pt.Y))
		}
		writef(`" fill="none" stroke="%s" stroke-width="%s" />`+"\n", hexColor(c), format(width))
	}

	fg := p.opts.Foreground
	if b.Y0 < 0 && b.Y1 > 0 {
		line([]edgediff.Point{edgediff.Pt(b.X0, 0), edgediff.Pt(b.X1, 0)}, fg, px)
	}
	if b.X0 < 0 && b.X1 > 0 {
		line([]edgediff.Point{edgediff.Pt(0, b.Y0), edgediff.Pt(0, b.Y1)}, fg, px)
	}

	r := format(p.opts.MarkerRadius * px)
	for _, s := range p.series {
		switch s.kind {
		case polylineKind:
			if len(s.pts) > 0 {
				line(s.pts, s.color, p.opts.StrokeWidth*px)
			}
		case markersKind:
			for _, pt := range s.pts {
				writef(`<circle cx="%s" cy="%s" r="%s" fill="%s" />`+"\n",
					format(pt.X), format(pt.Y), r, hexColor(s.color))
			}
		case ringsKind:
			for _, pt := range s.pts {
				writef(`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s" />`+"\n",
					format(pt.X), format(pt.Y), r, hexColor(s.color), format(p.opts.StrokeWidth*px))
			}
		default:
			panic("unreachable")
		}
	}
	writef("</g>\n</svg>\n")
	return err
}

// hexColor formats c as an SVG colour, ignoring alpha.
func hexColor(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}

func formatTick(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}

package edgediff

// Line represents a line segment between two consecutive points of a [Path].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// SignedArea returns the line's contribution to the line integral ∮x dy,
// using the trapezoid rule: (x0 + x1)(y1 − y0) / 2.
//
// Summed over a closed polygon this is the polygon's signed area, positive
// for anticlockwise orientation when y points up. Summed over an open path
// it is the signed area between the path and the y axis.
func (l Line) SignedArea() float64 {
	return (l.P0.X + l.P1.X) * (l.P1.Y - l.P0.Y) / 2
}

// SegmentArea is shorthand for Line{p0, p1}.SignedArea().
func SegmentArea(p0, p1 Point) float64 {
	return Line{p0, p1}.SignedArea()
}

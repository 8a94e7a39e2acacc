package edgediff

import (
	"fmt"
	"iter"
	"math"
)

// DefaultStepsPerSegment is the number of samples [EvalSpline] is usually
// asked to produce per spline segment.
const DefaultStepsPerSegment = 20

// Alpha is the exponent of the knot parameterization. 0.5 yields the
// centripetal Catmull-Rom spline, which has no cusps or self-intersections
// within a segment.
const Alpha = 0.5

// CatmullRom is a centripetal Catmull-Rom spline defined by its control
// points. The spline interpolates all of its control points, starting at the
// first and ending at the last one.
//
// A unit edge starts at (0, 0) and ends at (1, 0), but this isn't enforced.
type CatmullRom []Point

// CatmullRomSegment is the portion of a [CatmullRom] spline between P1 and
// P2. P0 and P3 are the neighbouring control points that determine the
// tangents at P1 and P2.
type CatmullRomSegment struct {
	P0, P1, P2, P3 Point
}

// Windows returns an iterator over the spline's segments, one per pair of
// consecutive control points. At the ends of the spline, where a neighbour
// doesn't exist, the boundary point is used as its own neighbour.
func (c CatmullRom) Windows() iter.Seq[CatmullRomSegment] {
	return func(yield func(CatmullRomSegment) bool) {
		n := len(c)
		for i := 0; i < n-1; i++ {
			seg := CatmullRomSegment{
				P0: c[max(i-1, 0)],
				P1: c[i],
				P2: c[i+1],
				P3: c[min(i+2, n-1)],
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Sample returns the spline as a path with stepsPerSegment points per
// segment, followed by the final control point. The first point of the
// path is the first control point.
//
// It returns an error wrapping [ErrInvalidInput] if the spline has fewer
// than four control points or if stepsPerSegment is less than one.
func (c CatmullRom) Sample(stepsPerSegment int) (Path, error) {
	if len(c) < 4 {
		return nil, fmt.Errorf("%w: spline needs at least 4 control points, got %d", ErrInvalidInput, len(c))
	}
	if stepsPerSegment < 1 {
		return nil, fmt.Errorf("%w: steps per segment must be positive, got %d", ErrInvalidInput, stepsPerSegment)
	}
	path := make(Path, 0, (len(c)-1)*stepsPerSegment+1)
	for seg := range c.Windows() {
		for pt := range seg.Samples(stepsPerSegment) {
			path = append(path, pt)
		}
	}
	return append(path, c[len(c)-1]), nil
}

// EvalSpline samples the centripetal Catmull-Rom spline through ctrl. See
// [CatmullRom.Sample].
func EvalSpline(ctrl []Point, stepsPerSegment int) (Path, error) {
	return CatmullRom(ctrl).Sample(stepsPerSegment)
}

// Knots returns the knot parameters t0 through t3, with t0 = 0 and
// t_{i+1} = t_i + |P_i − P_{i+1}|^α.
func (s CatmullRomSegment) Knots() [4]float64 {
	var k [4]float64
	k[1] = k[0] + math.Pow(s.P0.Distance(s.P1), Alpha)
	k[2] = k[1] + math.Pow(s.P1.Distance(s.P2), Alpha)
	k[3] = k[2] + math.Pow(s.P2.Distance(s.P3), Alpha)
	return k
}

// Eval evaluates the segment at t ∈ [0, 1], where 0 corresponds to P1 and 1
// corresponds to P2.
func (s CatmullRomSegment) Eval(t float64) Point {
	k := s.Knots()
	return s.evalKnot(k, k[1]+t*(k[2]-k[1]))
}

// Samples returns an iterator over n points of the segment, evenly spaced
// in knot parameter from P1 (inclusive) to P2 (exclusive).
func (s CatmullRomSegment) Samples(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		k := s.Knots()
		step := (k[2] - k[1]) / float64(n)
		for i := range n {
			if !yield(s.evalKnot(k, k[1]+float64(i)*step)) {
				return
			}
		}
	}
}

// evalKnot evaluates the segment at knot parameter t using the
// Barry–Goldman pyramid of linear blends.
func (s CatmullRomSegment) evalKnot(k [4]float64, t float64) Point {
	a1 := blend(s.P0, s.P1, k[0], k[1], t)
	a2 := blend(s.P1, s.P2, k[1], k[2], t)
	a3 := blend(s.P2, s.P3, k[2], k[3], t)

	b1 := blend(a1, a2, k[0], k[2], t)
	b2 := blend(a2, a3, k[1], k[3], t)

	return blend(b1, b2, k[1], k[2], t)
}

// blend linearly interpolates between q0 at ta and q1 at tb. Coincident
// points collapse their knot interval to zero length, in which case q0 is
// returned as is.
func blend(q0, q1 Point, ta, tb, t float64) Point {
	if q0.ApproxEq(q1) {
		return q0
	}
	return q0.Lerp(q1, (t-ta)/(tb-ta))
}

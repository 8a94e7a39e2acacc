package edgediff

import (
	"iter"
	"slices"
)

// Path is an ordered sequence of sampled points, typically produced by
// [EvalSpline]. Paths are treated as immutable; functions in this package
// never modify the paths they are given.
type Path []Point

// Lines returns an iterator over the line segments connecting consecutive
// points of the path.
func (p Path) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
	}
}

// SignedArea returns the discrete line integral ∮x dy along the path, that
// is, the sum of [Line.SignedArea] over all of its segments. Paths with
// fewer than two points have an area of zero.
//
// For a closed path this is the enclosed signed area. For a path that
// starts and ends on the x axis, such as a unit edge from (0, 0) to (1, 0),
// it is the negated signed area between the path and the x axis, since
// ∫x dy = −∫y dx when xy vanishes at both ends.
func (p Path) SignedArea() float64 {
	var sum float64
	for l := range p.Lines() {
		sum += l.SignedArea()
	}
	return sum
}

// Start returns the first point of the path. It panics if the path is empty.
func (p Path) Start() Point { return p[0] }

// End returns the last point of the path. It panics if the path is empty.
func (p Path) End() Point { return p[len(p)-1] }

// BoundingBox returns the smallest rectangle enclosing all points of the
// path. The result is empty (see [Rect.IsEmpty]) for an empty path.
func (p Path) BoundingBox() Rect {
	bbox := EmptyRect()
	for _, pt := range p {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// IsNaN reports whether any point of the path has a NaN coordinate.
func (p Path) IsNaN() bool {
	return slices.ContainsFunc(p, Point.IsNaN)
}

// IsInf reports whether any point of the path has an infinite coordinate.
func (p Path) IsInf() bool {
	return slices.ContainsFunc(p, Point.IsInf)
}

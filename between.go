package edgediff

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// AreaBetween returns the total unsigned area enclosed between two paths
// that share their start and end points, given the paths' intersections.
//
// The intersections split both paths into spans. Each pair of matching spans
// forms a closed loop, whose area is computed independently; the result is
// the sum of the loops' absolute areas, so regions on opposite sides of a
// crossing don't cancel each other out. Two paths that coincide have an
// area of zero.
//
// xs must be sorted in ascending order of [Intersection.I], for example by
// [SortIntersections]. The J indices needn't increase, because a crossing can
// lie behind the previous one on the second path, but the second path must
// not revisit a region it has already passed; this isn't checked.
//
// It returns an error wrapping [ErrInvalidInput] if either path is empty, if
// xs isn't sorted, or if xs contains indices out of range.
func AreaBetween(p1, p2 Path, xs []Intersection) (float64, error) {
	if len(p1) == 0 || len(p2) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	if !slices.IsSortedFunc(xs, func(a, b Intersection) int { return cmp.Compare(a.I, b.I) }) {
		return 0, fmt.Errorf("%w: intersections not sorted by index into first path", ErrInvalidInput)
	}
	for _, x := range xs {
		if x.I < 0 || x.I >= len(p1) || x.J < 0 || x.J >= len(p2) {
			return 0, fmt.Errorf("%w: intersection %v out of range for paths of length %d and %d",
				ErrInvalidInput, x, len(p1), len(p2))
		}
	}

	log := Logger()
	var total float64
	a1, a2 := 0, 0
	for _, x := range xs {
		b1, b2 := x.I, x.J
		var loop float64
		if a2 <= b2 {
			loop = forwardLoopArea(p1, p2, a1, a2, b1, b2)
		} else {
			loop = backwardLoopArea(p1, p2, a1, a2, b1, b2)
		}
		log.Debug("span area", "from", Intersection{a1, a2}, "to", x, "area", loop)
		total += loop
		a1, a2 = b1, b2
	}

	tail := math.Abs(p1[a1:].SignedArea() - p2[a2:].SignedArea() + SegmentArea(p2[a2], p1[a1]))
	log.Debug("span area", "from", Intersection{a1, a2}, "to", "end", "area", tail)
	return total + tail, nil
}

// forwardLoopArea returns the absolute area of the loop running along p1
// from a1 to b1, across to p2[b2], back along p2 from b2 to a2, and across
// to p1[a1]. It requires a2 ≤ b2.
func forwardLoopArea(p1, p2 Path, a1, a2, b1, b2 int) float64 {
	area := p1[a1:b1+1].SignedArea() +
		SegmentArea(p1[b1], p2[b2]) -
		p2[a2:b2+1].SignedArea() +
		SegmentArea(p2[a2], p1[a1])
	return math.Abs(area)
}

// backwardLoopArea is like forwardLoopArea for the case a2 > b2, in which
// the loop follows p2 forward from b2 to a2.
func backwardLoopArea(p1, p2 Path, a1, a2, b1, b2 int) float64 {
	area := p1[a1:b1+1].SignedArea() +
		SegmentArea(p1[b1], p2[b2]) +
		p2[b2:a2+1].SignedArea() +
		SegmentArea(p2[a2], p1[a1])
	return math.Abs(-area)
}

// AreaBetweenNormalized returns the total area enclosed between two paths
// that start at the same point and end at the same point, such as two unit
// edges sampled by [EvalSpline]. It finds the paths' intersections with
// [FindIntersections] and sums the enclosed areas with [AreaBetween].
//
// It returns an error wrapping [ErrInvalidInput] if either path is empty or
// if the paths' start or end points differ by [Epsilon] or more.
func AreaBetweenNormalized(p1, p2 Path) (float64, error) {
	if len(p1) == 0 || len(p2) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	if !p1.Start().ApproxEq(p2.Start()) {
		return 0, fmt.Errorf("%w: paths start at different points %v and %v", ErrInvalidInput, p1.Start(), p2.Start())
	}
	if !p1.End().ApproxEq(p2.End()) {
		return 0, fmt.Errorf("%w: paths end at different points %v and %v", ErrInvalidInput, p1.End(), p2.End())
	}
	xs := FindIntersections(p1, p2)
	SortIntersections(xs)
	return AreaBetween(p1, p2, xs)
}

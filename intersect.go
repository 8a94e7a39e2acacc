package edgediff

import (
	"cmp"
	"fmt"
	"slices"
)

// IntersectionTolerance is the largest distance between two path points
// that can still be reported as an intersection by [FindIntersections].
const IntersectionTolerance = 0.01

// Intersection identifies a crossing of two paths by the index of the
// crossing point in each path.
type Intersection struct {
	// Index into the first path.
	I int
	// Index into the second path.
	J int
}

func (x Intersection) String() string {
	return fmt.Sprintf("(%d, %d)", x.I, x.J)
}

// FindIntersections returns the index pairs (i, j) at which p1[i] and p2[j]
// are closer than [IntersectionTolerance] and their squared distance is a
// local minimum: no greater than that of any of the eight neighbouring
// pairs (i±1, j±1).
//
// Pairs involving the first or last point of either path are never
// reported, so crossings at the very ends of the paths are missed. Plateaus
// of equal distances, such as when the paths overlap, yield one pair per
// plateau cell.
//
// The result is in row-major order of (i, j). [AreaBetween] requires it to
// be sorted by i, which [SortIntersections] does.
//
// The search computes all len(p1)·len(p2) distances and is meant for
// sampled curves of at most a few thousand points.
func FindIntersections(p1, p2 Path) []Intersection {
	w, h := len(p1), len(p2)
	if w < 3 || h < 3 {
		return nil
	}
	dist := make([]float64, w*h)
	for i, pt1 := range p1 {
		row := dist[i*h : (i+1)*h]
		for j, pt2 := range p2 {
			row[j] = pt1.DistanceSquared(pt2)
		}
	}

	const tol2 = IntersectionTolerance * IntersectionTolerance
	var out []Intersection
	for i := 1; i < w-1; i++ {
		for j := 1; j < h-1; j++ {
			d := dist[i*h+j]
			if d < tol2 && isLocalMin(dist, h, i, j) {
				out = append(out, Intersection{i, j})
			}
		}
	}
	Logger().Debug("found intersections", "len1", w, "len2", h, "count", len(out))
	return out
}

// isLocalMin reports whether the interior cell (i, j) of the row-major
// matrix m with the given stride is no greater than its eight neighbours.
func isLocalMin(m []float64, stride, i, j int) bool {
	d := m[i*stride+j]
	for di := -1; di <= 1; di++ {
		row := (i + di) * stride
		for dj := -1; dj <= 1; dj++ {
			if d > m[row+j+dj] {
				return false
			}
		}
	}
	return true
}

// SortIntersections sorts xs in ascending order of the index into the first
// path. The relative order of pairs sharing the same index is preserved.
func SortIntersections(xs []Intersection) {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.I, b.I)
	})
}

// IntersectionPoints returns the points of p1 and p2 identified by xs, for
// example to mark them on a plot.
func IntersectionPoints(p1, p2 Path, xs []Intersection) (on1, on2 []Point) {
	on1 = make([]Point, len(xs))
	on2 = make([]Point, len(xs))
	for k, x := range xs {
		on1[k] = p1[x.I]
		on2[k] = p2[x.J]
	}
	return on1, on2
}

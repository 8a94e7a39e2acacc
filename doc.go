// Package edgediff measures how different two curves are by the area
// enclosed between them. It was written to compare candidate boundary curves
// of jigsaw pieces, but works for any pair of curves that share their start
// and end points.
//
// # Unit edges
//
// Curves are normalized to unit edges: they start at (0, 0) and end at
// (1, 0). Matching under rotation or mirroring isn't supported; callers must
// normalize curves before comparing them.
//
// # Splines and paths
//
// A curve is described by a handful of control points and interpolated with
// a centripetal Catmull-Rom spline ([CatmullRom], [EvalSpline]). Sampling
// the spline yields a [Path], a plain slice of points that is the unit of
// exchange between the functions of this package and with plotting code,
// such as package plot.
//
// # Areas
//
// The signed area of a path ([Path.SignedArea]) is computed with the
// discrete line integral ∮x dy, which by [Green's theorem] is the enclosed
// area for closed paths.
//
// Comparing two paths that cross each other can't use a single integral,
// as the regions on either side of a crossing have opposite signs and would
// cancel out. [FindIntersections] locates the crossings and [AreaBetween]
// sums the absolute areas of the loops between consecutive crossings.
// [AreaBetweenNormalized] combines both steps.
//
// # Errors and logging
//
// Functions with preconditions return errors wrapping [ErrInvalidInput]. The
// package doesn't log unless a logger is installed with [SetLogger].
//
// # Literature
//
//   - [Centripetal Catmull–Rom spline]
//   - [Green's theorem]
//   - [On parameterization of Catmull-Rom curves] by Yuksel, Schaefer, and Keyser
//
// [Centripetal Catmull–Rom spline]: https://en.wikipedia.org/wiki/Centripetal_Catmull%E2%80%93Rom_spline
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
// [On parameterization of Catmull-Rom curves]: https://www.cemyuksel.com/research/catmullrom_param/
package edgediff

package edgediff_test

import (
	"fmt"

	"honnef.co/go/edgediff"
)

func ExamplePath_SignedArea() {
	triangle := edgediff.Path{
		edgediff.Pt(0, 0),
		edgediff.Pt(1, 0),
		edgediff.Pt(0.5, 1),
		edgediff.Pt(0, 0),
	}
	fmt.Println(triangle.SignedArea())
	// Output: 0.5
}

func ExampleAreaBetweenNormalized() {
	// Two unit edges with a knob each; the second knob is taller.
	edge1 := []edgediff.Point{
		edgediff.Pt(0.0, 0.0),
		edgediff.Pt(0.4, 0.0),
		edgediff.Pt(0.3, 0.2),
		edgediff.Pt(0.5, 0.3),
		edgediff.Pt(0.7, 0.2),
		edgediff.Pt(0.6, 0.0),
		edgediff.Pt(1.0, 0.0),
	}
	edge2 := []edgediff.Point{
		edgediff.Pt(0.0, 0.0),
		edgediff.Pt(0.4, 0.0),
		edgediff.Pt(0.3, 0.25),
		edgediff.Pt(0.5, 0.35),
		edgediff.Pt(0.7, 0.25),
		edgediff.Pt(0.6, 0.0),
		edgediff.Pt(1.0, 0.0),
	}
	p1, err := edgediff.EvalSpline(edge1, edgediff.DefaultStepsPerSegment)
	if err != nil {
		panic(err)
	}
	p2, err := edgediff.EvalSpline(edge2, edgediff.DefaultStepsPerSegment)
	if err != nil {
		panic(err)
	}
	area, err := edgediff.AreaBetweenNormalized(p1, p2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", area)
	// Output: 0.0266
}

func ExampleAreaBetween() {
	// The edges cross at their midpoints. Without splitting the paths at the
	// crossing, the two lobes would cancel out.
	p1 := edgediff.Path{
		edgediff.Pt(0, 0), edgediff.Pt(0.25, 0.25), edgediff.Pt(0.5, 0),
		edgediff.Pt(0.75, -0.25), edgediff.Pt(1, 0),
	}
	p2 := edgediff.Path{
		edgediff.Pt(0, 0), edgediff.Pt(0.25, -0.25), edgediff.Pt(0.5, 0),
		edgediff.Pt(0.75, 0.25), edgediff.Pt(1, 0),
	}
	xs := edgediff.FindIntersections(p1, p2)
	edgediff.SortIntersections(xs)
	area, err := edgediff.AreaBetween(p1, p2, xs)
	if err != nil {
		panic(err)
	}
	fmt.Println(xs)
	fmt.Printf("%.2f %.2f\n", p1.SignedArea()-p2.SignedArea(), area)
	// Output:
	// [(2, 2)]
	// 0.00 0.25
}

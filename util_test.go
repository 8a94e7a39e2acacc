package edgediff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// jigsawEdge is a unit edge with a single round knob.
func jigsawEdge() CatmullRom {
	return CatmullRom{
		Pt(0.0, 0.0),
		Pt(0.4, 0.0),
		Pt(0.3, 0.2),
		Pt(0.5, 0.3),
		Pt(0.7, 0.2),
		Pt(0.6, 0.0),
		Pt(1.0, 0.0),
	}
}

// mustSample samples c or fails the test.
func mustSample(t *testing.T, c CatmullRom, steps int) Path {
	t.Helper()
	p, err := c.Sample(steps)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

package game

import (
	"math"
	"testing"
)

func TestDistanceAndMagnitude(t *testing.T) {
	if d := Distance(Vec{X: 0, Y: 0}, Vec{X: 3, Y: 4}); d != 5 {
		t.Fatalf("distance: got=%f want=5", d)
	}
	if m := Magnitude(Vec{X: -6, Y: 8}); m != 10 {
		t.Fatalf("magnitude: got=%f want=10", m)
	}
}

func TestNormalize(t *testing.T) {
	n := Normalize(Vec{X: 0, Y: -2})
	if n.X != 0 || n.Y != -1 {
		t.Fatalf("normalize: got=%+v want={0 -1}", n)
	}
	if z := Normalize(Vec{}); z != (Vec{}) {
		t.Fatalf("normalize zero: got=%+v", z)
	}
	n = Normalize(Vec{X: 1, Y: 1})
	if math.Abs(Magnitude(n)-1) > 1e-12 {
		t.Fatalf("expected unit length, got %f", Magnitude(n))
	}
}

func TestIntersectingIsInclusive(t *testing.T) {
	a := NewEntity(0, 0, 10, "blue")
	b := NewEntity(25, 0, 15, "red")

	if !Intersecting(a, b) {
		t.Fatalf("touching circles should intersect")
	}

	b.Pos.X = 25.001
	if Intersecting(a, b) {
		t.Fatalf("separated circles should not intersect")
	}
}

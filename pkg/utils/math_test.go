package utils

import (
	"math"
	"testing"
)

func TestDistanceAndAngle(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Fatalf("distance: got=%f want=5", d)
	}
	if a := Angle(0, 0, 0, 10); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Fatalf("angle: got=%f want=%f", a, math.Pi/2)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float64 }{
		{-5, 0},
		{5, 5},
		{15, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, 0, 10); got != c.want {
			t.Errorf("Clamp(%f): got=%f want=%f", c.v, got, c.want)
		}
	}
}

func TestOverlapsIsStrict(t *testing.T) {
	if Overlaps(0, 0, 5, 10, 0, 5) {
		t.Fatalf("touching circles must not overlap")
	}
	if !Overlaps(0, 0, 5, 9.99, 0, 5) {
		t.Fatalf("expected overlap")
	}
}

func TestPolar(t *testing.T) {
	x, y := Polar(0, 8)
	if x != 8 || y != 0 {
		t.Fatalf("polar: got=(%f,%f)", x, y)
	}
}

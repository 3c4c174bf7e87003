package sim

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestNormalizeZeroVector(t *testing.T) {
	n := Vec2{}.Normalize()
	if n != (Vec2{}) {
		t.Fatalf("normalize(0,0) = %+v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Fatalf("normalize(0,0) produced NaN")
	}
}

func TestVectorOps(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, 6) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != V(4, 2) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v", got)
	}
	n := a.Normalize()
	if !near(n.X, 0.6, eps) || !near(n.Y, 0.8, eps) || !near(n.Len(), 1, eps) {
		t.Errorf("Normalize = %+v", n)
	}
}

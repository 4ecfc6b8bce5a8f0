package gamemath

import "testing"

func TestIntersectsRequiresStrictOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 50, H: 50}

	if !a.Intersects(Rect{X: 25, Y: 25, W: 50, H: 50}) {
		t.Fatal("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 50, Y: 0, W: 50, H: 50}) {
		t.Fatal("edge-touching rects must not intersect")
	}
	if a.Intersects(Rect{X: 0, Y: 50, W: 50, H: 50}) {
		t.Fatal("stacked rects sharing an edge must not intersect")
	}
	if a.Intersects(Rect{X: 100, Y: 100, W: 50, H: 50}) {
		t.Fatal("disjoint rects must not intersect")
	}
}

func TestContainsPointHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 50, H: 50}

	if !r.ContainsPoint(Vec2{X: 10, Y: 10}) {
		t.Fatal("top-left corner is inside")
	}
	if !r.ContainsPoint(Vec2{X: 35, Y: 35}) {
		t.Fatal("interior point is inside")
	}
	if r.ContainsPoint(Vec2{X: 60, Y: 35}) {
		t.Fatal("right edge is outside")
	}
	if r.ContainsPoint(Vec2{X: 35, Y: 60}) {
		t.Fatal("bottom edge is outside")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 40, H: 50}
	c := r.Center()
	if c.X != 120 || c.Y != 225 {
		t.Fatalf("center = %+v, want (120, 225)", c)
	}
}

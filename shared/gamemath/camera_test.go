package gamemath

import "testing"

func newTestCamera() Camera {
	return NewCamera(1200, 800, 4000, 2000)
}

func TestCameraCentersOnTarget(t *testing.T) {
	c := newTestCamera()
	target := Rect{X: 1980, Y: 980, W: 40, H: 40} // center at (2000, 1000)

	c.Update(target)

	if c.Offset.X != -1400 {
		t.Fatalf("offset.X = %f, want -1400", c.Offset.X)
	}
	if c.Offset.Y != -600 {
		t.Fatalf("offset.Y = %f, want -600", c.Offset.Y)
	}
}

func TestCameraClampsToWorldEdges(t *testing.T) {
	c := newTestCamera()

	c.Update(Rect{X: 0, Y: 0, W: 40, H: 50})
	if c.Offset.X != 0 || c.Offset.Y != 0 {
		t.Fatalf("top-left target: offset = %+v, want (0, 0)", c.Offset)
	}

	c.Update(Rect{X: 3960, Y: 1950, W: 40, H: 50})
	if c.Offset.X != -2800 {
		t.Fatalf("right edge: offset.X = %f, want -2800", c.Offset.X)
	}
	if c.Offset.Y != -1200 {
		t.Fatalf("bottom edge: offset.Y = %f, want -1200", c.Offset.Y)
	}
}

func TestCameraOffsetAlwaysInBounds(t *testing.T) {
	c := newTestCamera()

	targets := []Rect{
		{X: -500, Y: -500, W: 40, H: 50},
		{X: 2000, Y: 1000, W: 40, H: 50},
		{X: 9999, Y: 9999, W: 40, H: 50},
	}
	for _, target := range targets {
		c.Update(target)
		if c.Offset.X < -2800 || c.Offset.X > 0 {
			t.Fatalf("target %+v: offset.X = %f out of [-2800, 0]", target, c.Offset.X)
		}
		if c.Offset.Y < -1200 || c.Offset.Y > 0 {
			t.Fatalf("target %+v: offset.Y = %f out of [-1200, 0]", target, c.Offset.Y)
		}
	}
}

func TestCameraWorldSmallerThanViewport(t *testing.T) {
	c := NewCamera(1200, 800, 600, 400)

	c.Update(Rect{X: 300, Y: 200, W: 40, H: 50})
	if c.Offset.X != 0 || c.Offset.Y != 0 {
		t.Fatalf("small world: offset = %+v, want (0, 0)", c.Offset)
	}

	c.Pan(-100, -100)
	if c.Offset.X != 0 || c.Offset.Y != 0 {
		t.Fatalf("small world after pan: offset = %+v, want (0, 0)", c.Offset)
	}
}

func TestCameraPanClamps(t *testing.T) {
	c := newTestCamera()

	c.Pan(500, 500)
	if c.Offset.X != 0 || c.Offset.Y != 0 {
		t.Fatalf("pan past top-left: offset = %+v, want (0, 0)", c.Offset)
	}

	c.Pan(-10000, -10000)
	if c.Offset.X != -2800 || c.Offset.Y != -1200 {
		t.Fatalf("pan past bottom-right: offset = %+v, want (-2800, -1200)", c.Offset)
	}

	c.Pan(10, 10)
	if c.Offset.X != -2790 || c.Offset.Y != -1190 {
		t.Fatalf("pan step: offset = %+v, want (-2790, -1190)", c.Offset)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.Update(Rect{X: 1980, Y: 980, W: 40, H: 40})

	points := []Vec2{
		{X: 0, Y: 0},
		{X: 600, Y: 400},
		{X: 1234.5, Y: 678.25},
	}
	for _, p := range points {
		got := c.ToWorld(c.ToScreen(p))
		if got != p {
			t.Fatalf("round trip of %+v = %+v", p, got)
		}
	}
}

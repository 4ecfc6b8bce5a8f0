package gamemath

// Camera maps world coordinates to screen coordinates through a scroll
// offset. The offset is always non-positive: offset (0,0) shows the world's
// top-left corner, and scrolling right makes offset.X more negative.
type Camera struct {
	Offset    Vec2
	ViewportW float64
	ViewportH float64
	WorldW    float64
	WorldH    float64
}

// NewCamera returns a camera at offset (0,0) covering the given world.
func NewCamera(viewportW, viewportH, worldW, worldH float64) Camera {
	return Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
	}
}

// Update centers the viewport on target, then clamps the offset so the
// viewport never shows area outside the world bounds.
func (c *Camera) Update(target Rect) {
	center := target.Center()
	c.Offset.X = -center.X + c.ViewportW/2
	c.Offset.Y = -center.Y + c.ViewportH/2
	c.clamp()
}

// Pan shifts the offset by (dx, dy) and re-applies the bounds clamp. Used
// for free camera movement in the editor.
func (c *Camera) Pan(dx, dy float64) {
	c.Offset.X += dx
	c.Offset.Y += dy
	c.clamp()
}

// ToScreen converts a world-space point to screen space.
func (c *Camera) ToScreen(p Vec2) Vec2 {
	return p.Add(c.Offset)
}

// ToWorld converts a screen-space point to world space. Exact inverse of
// ToScreen; the editor relies on the round trip being lossless for grid
// picking.
func (c *Camera) ToWorld(p Vec2) Vec2 {
	return p.Sub(c.Offset)
}

// ViewRect returns the world-space rectangle currently visible.
func (c *Camera) ViewRect() Rect {
	return Rect{X: -c.Offset.X, Y: -c.Offset.Y, W: c.ViewportW, H: c.ViewportH}
}

func (c *Camera) clamp() {
	c.Offset.X = clampAxis(c.Offset.X, c.WorldW, c.ViewportW)
	c.Offset.Y = clampAxis(c.Offset.Y, c.WorldH, c.ViewportH)
}

// clampAxis keeps the offset within [-(world-viewport), 0]. When the world
// is smaller than the viewport the range inverts, and the offset pins to 0.
func clampAxis(offset, world, viewport float64) float64 {
	min := -(world - viewport)
	if min > 0 {
		return 0
	}
	if offset < min {
		return min
	}
	if offset > 0 {
		return 0
	}
	return offset
}

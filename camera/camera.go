// Package camera maps the square arena onto a screen viewport.
package camera

// Camera controls the viewport into the arena.
// Unlike a free camera it never shows space past the walls at its fit zoom.
type Camera struct {
	// Position is the camera center in arena coordinates
	X, Y float32

	// Zoom level in pixels per arena unit
	Zoom float32

	// Viewport rectangle on screen
	ViewportX, ViewportY float32
	ViewportW, ViewportH float32

	// Arena edge length
	WorldSize float32

	// Zoom constraints; MinZoom fits the whole arena
	MinZoom, MaxZoom float32
}

// New creates a camera showing the whole arena inside the viewport
// rectangle at (x, y) with size w x h.
func New(x, y, w, h, worldSize float32) *Camera {
	c := &Camera{
		ViewportX: x,
		ViewportY: y,
		WorldSize: worldSize,
	}
	c.Resize(w, h)
	c.Reset()
	return c
}

// fitZoom returns the zoom at which the arena exactly fits the viewport.
func (c *Camera) fitZoom() float32 {
	return min(c.ViewportW/c.WorldSize, c.ViewportH/c.WorldSize)
}

// WorldToScreen converts arena coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportX + c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportY + c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to arena coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportX-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportY-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// Length converts an arena distance to pixels.
func (c *Camera) Length(d float32) float32 {
	return d * c.Zoom
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = c.fitZoom()
	c.MaxZoom = 4 * c.MinZoom
	c.SetZoom(c.Zoom)
}

// Pan moves the camera by the given delta in screen pixels. The center
// stays inside the arena.
func (c *Camera) Pan(dx, dy float32) {
	c.X = clamp(c.X+dx/c.Zoom, 0, c.WorldSize)
	c.Y = clamp(c.Y+dy/c.Zoom, 0, c.WorldSize)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset centers the camera and fits the whole arena.
func (c *Camera) Reset() {
	c.X = c.WorldSize / 2
	c.Y = c.WorldSize / 2
	c.Zoom = c.MinZoom
}

// ArenaRect returns the screen rectangle covered by the arena.
func (c *Camera) ArenaRect() (x, y, w, h float32) {
	x, y = c.WorldToScreen(0, 0)
	side := c.Length(c.WorldSize)
	return x, y, side, side
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

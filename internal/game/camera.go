package game

// Default handheld screen size in pixels.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// Camera is the viewport over the world. Position is the world-space pixel
// at the top-left of the screen.
type Camera struct {
	position    Point
	worldWidth  int
	worldHeight int
	screen      Size
}

// NewCamera creates a camera at the world origin with the default screen size.
func NewCamera(worldWidth, worldHeight int) *Camera {
	return NewCameraWithScreen(worldWidth, worldHeight, Size{W: ScreenWidth, H: ScreenHeight})
}

// NewCameraWithScreen creates a camera for a non-default screen size.
func NewCameraWithScreen(worldWidth, worldHeight int, screen Size) *Camera {
	return &Camera{worldWidth: worldWidth, worldHeight: worldHeight, screen: screen}
}

// Position returns the viewport top-left in world space.
func (c *Camera) Position() Point { return c.position }

// Screen returns the viewport size.
func (c *Camera) Screen() Size { return c.screen }

// SetPosition moves the viewport without clamping.
func (c *Camera) SetPosition(p Point) { c.position = p }

// Viewport returns the visible world rectangle.
func (c *Camera) Viewport() Rect {
	return Rect{Min: c.position, W: c.screen.W, H: c.screen.H}
}

// Visible reports whether any part of r is on screen.
func (c *Camera) Visible(r Rect) bool {
	return c.Viewport().Overlaps(r)
}

// WorldToScreen converts a world pixel to a screen pixel.
func (c *Camera) WorldToScreen(p Point) Point {
	return Point{X: p.X - c.position.X, Y: p.Y - c.position.Y}
}

// ScreenToWorld converts a screen pixel to a world pixel.
func (c *Camera) ScreenToWorld(p Point) Point {
	return Point{X: p.X + c.position.X, Y: p.Y + c.position.Y}
}

// FollowPlayer eases the viewport toward centring target. smoothness is the
// fraction of the remaining distance covered this frame.
func (c *Camera) FollowPlayer(target Point, smoothness float64) {
	tx := target.X - c.screen.W/2
	ty := target.Y - c.screen.H/2

	c.position.X += int(float64(tx-c.position.X) * smoothness)
	c.position.Y += int(float64(ty-c.position.Y) * smoothness)

	c.clampToBounds()
}

// clampToBounds keeps the viewport inside the world. When the world is
// narrower than the screen on an axis the upper bound collapses to zero.
func (c *Camera) clampToBounds() {
	maxX := max(0, c.worldWidth-c.screen.W)
	maxY := max(0, c.worldHeight-c.screen.H)
	c.position.X = clamp(c.position.X, 0, maxX)
	c.position.Y = clamp(c.position.Y, 0, maxY)
}

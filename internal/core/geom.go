// Package core provides the value types shared by the games and the
// platform: buttons and input frames, phases and step results, and the
// character canvas the panel is plotted into. It has no external
// dependencies to keep game logic pure and testable.
package core

// Rect is an area on the character canvas, used to frame a plotted panel.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Package physics holds the geometry shared by every entity kind: vectors,
// axis-aligned bodies, the pairwise overlap test run by the game loop and an
// optional quad tree used to narrow the collision sweep.
package physics

import "fmt"

// Body is an axis-aligned rectangle described by its center and its full
// width and height. Size is fixed for the lifetime of the owning entity.
type Body struct {
	Center Vector2D
	Size   Vector2D
}

// NewBody creates a body. A negative size is a programming error.
func NewBody(center, size Vector2D) *Body {
	if size.X < 0 || size.Y < 0 {
		panic(fmt.Sprintf("physics: negative body size %v", size))
	}
	return &Body{Center: center, Size: size}
}

// Min returns the top-left corner
func (b *Body) Min() Vector2D {
	return b.Center.Sub(b.Size.Half())
}

// Max returns the bottom-right corner
func (b *Body) Max() Vector2D {
	return b.Center.Add(b.Size.Half())
}

// Translate moves the body by delta
func (b *Body) Translate(delta Vector2D) {
	b.Center = b.Center.Add(delta)
}

// Bounds returns the body as a Rect value
func (b *Body) Bounds() Rect {
	return Rect{Center: b.Center, Width: b.Size.X, Height: b.Size.Y}
}

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// RectFromCorner builds a Rect from its top-left corner and size.
func RectFromCorner(x, y, width, height float64) Rect {
	return Rect{
		Center: Vector2D{X: x + width/2, Y: y + height/2},
		Width:  width,
		Height: height,
	}
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() float64 {
	return r.Center.X - r.Width/2
}

// Top returns the y coordinate of the top edge
func (r Rect) Top() float64 {
	return r.Center.Y - r.Height/2
}

// Contains reports whether point lies inside the rect. The left and top
// edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// Intersects reports whether the two rects share any area or edge.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Center.X-other.Width/2 > r.Center.X+r.Width/2 ||
		other.Center.X+other.Width/2 < r.Center.X-r.Width/2 ||
		other.Center.Y-other.Height/2 > r.Center.Y+r.Height/2 ||
		other.Center.Y+other.Height/2 < r.Center.Y-r.Height/2)
}

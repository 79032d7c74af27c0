package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBody(t *testing.T) {
	b := NewBody(Vector2D{X: 240, Y: 625}, Vector2D{X: 15, Y: 15})

	assert.Equal(t, Vector2D{X: 232.5, Y: 617.5}, b.Min())
	assert.Equal(t, Vector2D{X: 247.5, Y: 632.5}, b.Max())
	assert.Equal(t, Rect{Center: Vector2D{X: 240, Y: 625}, Width: 15, Height: 15}, b.Bounds())
}

func TestNewBody_NegativeSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBody(Vector2D{}, Vector2D{X: -1, Y: 3})
	})
}

func TestBody_Translate(t *testing.T) {
	b := NewBody(Vector2D{X: 10, Y: 10}, Vector2D{X: 3, Y: 3})
	b.Translate(Vector2D{X: -0.5, Y: -7})

	assert.Equal(t, Vector2D{X: 9.5, Y: 3}, b.Center)
	assert.Equal(t, Vector2D{X: 3, Y: 3}, b.Size, "translation must not resize")
}

func TestRectFromCorner(t *testing.T) {
	r := RectFromCorner(0, 0, 480, 640)

	assert.Equal(t, Vector2D{X: 240, Y: 320}, r.Center)
	assert.Equal(t, 0.0, r.Left())
	assert.Equal(t, 0.0, r.Top())
	assert.Equal(t, 480.0, r.Width)
	assert.Equal(t, 640.0, r.Height)
}

func TestRect_Intersects(t *testing.T) {
	base := RectFromCorner(0, 0, 10, 10)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlapping", RectFromCorner(5, 5, 10, 10), true},
		{"shared_edge", RectFromCorner(10, 0, 10, 10), true},
		{"inside", RectFromCorner(2, 2, 2, 2), true},
		{"left_of", RectFromCorner(-20, 0, 10, 10), false},
		{"below", RectFromCorner(0, 11, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Intersects(tt.other))
			assert.Equal(t, tt.expected, tt.other.Intersects(base))
		})
	}
}

// Package math provides the vector, matrix and rotation types used for
// placement geometry.
package math

// Vec2 is a 2D vector, used for pointer positions in viewport pixels.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// ToNDC maps a pixel position inside a width x height viewport to
// normalized device coordinates (-1 to 1, Y up).
func (v Vec2) ToNDC(width, height float32) Vec2 {
	return Vec2{
		X: 2.0*v.X/width - 1.0,
		Y: 1.0 - 2.0*v.Y/height,
	}
}

// Package core provides fundamental types shared by the engine and the
// platform layer. It has no external dependencies so game logic stays pure
// and testable.
package core

// Point is a cell coordinate. Y grows downward; negative Y is above the field.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

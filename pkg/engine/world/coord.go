package world

import (
	"fmt"
	"math"
)

// Coord is an integer grid position, 0-indexed.
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "row:col", the same form used for cell names
func (c Coord) String() string {
	return fmt.Sprintf("%v:%v", c.Row, c.Col)
}

// Vec returns the coordinate as a continuous vector
func (c Coord) Vec() Vec2 {
	return Vec2{Row: float64(c.Row), Col: float64(c.Col)}
}

// ClipTo clamps c into a size x size board
func ClipTo(c Coord, size int) Coord {
	return Coord{Row: max(0, min(c.Row, size-1)), Col: max(0, min(c.Col, size-1))}
}

// Vec2 is a continuous position or offset measured in cells.
type Vec2 struct {
	Row float64
	Col float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{Row: v.Row + o.Row, Col: v.Col + o.Col}
}

// Scale returns v scaled by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{Row: v.Row * s, Col: v.Col * s}
}

// Len returns the Euclidean length of v
func (v Vec2) Len() float64 {
	return math.Sqrt(v.Row*v.Row + v.Col*v.Col)
}

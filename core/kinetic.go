package core

import "math"

// Point is a position in frame pixel space
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Kinetic holds position and per-frame velocity of a projectile
type Kinetic struct {
	// X and Y are the centre in pixels
	X, Y float64
	// VX and VY are velocity in pixels per frame, +Y points down the screen
	VX, VY float64
}

// Pos returns the centre as a Point
func (k Kinetic) Pos() Point {
	return Point{X: k.X, Y: k.Y}
}

// Frame describes one captured frame at the source boundary
type Frame struct {
	Width, Height int
	// Seq increments per frame delivered by a source
	Seq uint64
}

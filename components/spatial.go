package components

import "math"

// Point is a position in arena space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// In reports whether p lies inside the half-open square [0, size)².
func (p Point) In(size float64) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistanceSq returns the squared distance between a and b.
// Collision checks compare against a squared threshold to skip the sqrt.
func DistanceSq(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Direction returns the unit vector for heading angle a (radians).
func Direction(a float64) Point {
	s, c := math.Sincos(a)
	return Point{X: c, Y: s}
}

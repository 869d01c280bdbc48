package components

import "math"

// Vec2 is a point or displacement in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned box with half-open bounds [X, X+W) x [Y, Y+H)
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Pos returns the top-left corner
func (r Rect) Pos() Vec2 { return Vec2{r.X, r.Y} }

package combat

import "math"

// Vec2 is a 2d point/vector; the sim world is flat
type Vec2 struct {
	X float64 `yaml:"X"`
	Y float64 `yaml:"Y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Norm returns the unit vector; zero vector stays zero
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns the counterclockwise perpendicular
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Heading returns the unit vector at angle rad
func Heading(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Angle returns the heading angle of v in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Arena is the playable region; leaving it counts as hitting terrain
type Arena struct {
	Min Vec2 `yaml:"Min"`
	Max Vec2 `yaml:"Max"`
}

func (a Arena) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

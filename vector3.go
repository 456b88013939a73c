package icoview

import "math"

// Vector3 is a point or direction in 3D space. Points on the unit sphere
// double as their own outward normals.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Subtract returns v - o.
func (v Vector3) Subtract(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Midpoint returns the point halfway between v and o.
func (v Vector3) Midpoint(o Vector3) Vector3 {
	return Vector3{
		X: (v.X + o.X) / 2,
		Y: (v.Y + o.Y) / 2,
		Z: (v.Z + o.Z) / 2,
	}
}

// Dot computes the dot product of two vectors.
func Dot(v1, v2 Vector3) float64 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// Cross computes the cross product of two vectors.
func Cross(v1, v2 Vector3) Vector3 {
	return Vector3{
		X: v1.Y*v2.Z - v1.Z*v2.Y,
		Y: v1.Z*v2.X - v1.X*v2.Z,
		Z: v1.X*v2.Y - v1.Y*v2.X,
	}
}

// NormalizedCross returns the unit-length cross product of a and b, or the
// zero vector if they are parallel.
func NormalizedCross(a, b Vector3) Vector3 {
	return Cross(a, b).Normalize()
}

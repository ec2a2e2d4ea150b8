package geom

import "math"

// Vector is a point or displacement in 3D world space. Value type,
// passed by value everywhere.
type Vector struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// DistanceSq avoids the sqrt for threshold comparisons.
func (v Vector) DistanceSq(o Vector) float64 {
	return v.Sub(o).LengthSq()
}

func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Length()
}

// Unit returns the unit vector in the direction of v. The zero vector
// (or anything shorter than 1e-9) maps to the zero vector rather than
// dividing by zero.
func (v Vector) Unit() Vector {
	l := v.Length()
	if l < 1e-9 {
		return Vector{}
	}
	return v.Scale(1.0 / l)
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

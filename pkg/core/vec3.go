package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector, used both as a point in space and as an RGB color
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector scaled by the inverse of a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// A zero-length input produces non-finite components; callers guarantee
// nonzero inputs geometrically, so no guard is applied here.
func (v Vec3) Normalize() Vec3 {
	return v.Multiply(1.0 / v.Length())
}

// Reflect returns the mirror reflection of the vector about a unit normal.
// The result has the same magnitude as the input.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Lerp linearly interpolates from v to other. The parameter t is not
// clamped; values outside [0,1] extrapolate past either endpoint.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Add(other.Subtract(v).Multiply(t))
}

// Clamp returns a vector with each component capped at maxVal.
// There is no lower bound; negative components pass through unchanged.
func (v Vec3) Clamp(maxVal float64) Vec3 {
	return Vec3{
		X: math.Min(v.X, maxVal),
		Y: math.Min(v.Y, maxVal),
		Z: math.Min(v.Z, maxVal),
	}
}

// RandomUnit generates a random unit direction by sampling each component
// uniformly in [-1,1] and normalizing. Cube-corner directions come out
// over-represented; that bias is part of this renderer's look.
func RandomUnit(random *rand.Rand) Vec3 {
	v := Vec3{
		X: 2*random.Float64() - 1,
		Y: 2*random.Float64() - 1,
		Z: 2*random.Float64() - 1,
	}
	return v.Normalize()
}

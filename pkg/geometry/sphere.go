package geometry

import (
	"math"
	"math/rand"

	"github.com/okarlsson/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere with a surface material.
// Roughness blends mirror reflection (0) against randomized diffuse
// scattering (1); a sphere with Emission > 0 is a light source.
type Sphere struct {
	Center    core.Vec3
	Radius    float64
	Color     core.Vec3
	Roughness float64
	Emission  float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3, roughness, emission float64) *Sphere {
	return &Sphere{
		Center:    center,
		Radius:    radius,
		Color:     color,
		Roughness: roughness,
		Emission:  emission,
	}
}

// Intersect tests if a ray intersects with the sphere and returns the
// distance to the near intersection point.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Projection of the center offset onto the ray direction
	os := oc.Dot(ray.Direction)
	if os < 0 {
		// Sphere center is behind the ray origin
		return 0, false
	}

	// Perpendicular distance from the center to the ray
	sc := math.Sqrt(oc.LengthSquared() - os*os)
	if sc >= s.Radius {
		return 0, false
	}

	// Near intersection distance. No surface epsilon is applied, so a ray
	// spawned exactly on the surface can hit it again.
	oi := os - math.Sqrt(s.Radius*s.Radius-sc*sc)
	return oi, true
}

// Scatter produces the bounce ray leaving hitPoint by blending the mirror
// reflection with a randomized diffuse direction according to Roughness.
// The blend is linear and does not conserve energy.
func (s *Sphere) Scatter(rayIn core.Ray, hitPoint core.Vec3, random *rand.Rand) core.Ray {
	normal := hitPoint.Subtract(s.Center).Normalize()

	reflected := rayIn.Direction.Reflect(normal).Multiply(1 - s.Roughness)
	diffuse := normal.Add(core.RandomUnit(random)).Multiply(s.Roughness)

	direction := reflected.Add(diffuse).Normalize()
	return core.NewRay(hitPoint, direction)
}

// Shade converts the light arriving along the bounce into the color leaving
// the surface. Light sources emit independently of incoming light; other
// spheres tint it by their albedo.
func (s *Sphere) Shade(probe core.Vec3) core.Vec3 {
	if s.Emission > 0 {
		return s.Color.Multiply(s.Emission)
	}
	return s.Color.MultiplyVec(probe)
}

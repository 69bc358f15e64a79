package scene

import (
	"math/rand"

	"github.com/okarlsson/go-sphere-tracer/pkg/core"
	"github.com/okarlsson/go-sphere-tracer/pkg/geometry"
)

// Scene contains everything needed to trace a ray: the image and sampling
// parameters, the sky gradient, and the geometry. A scene is built once and
// never mutated during a render, so it is safe to share across workers.
type Scene struct {
	Width      int
	Height     int
	Samples    int
	RayBounces int
	BgStart    core.Vec3
	BgEnd      core.Vec3
	Geometry   []geometry.Primitive
}

// RayColor returns the color arriving along a ray, following bounces
// recursively up to depth.
func (s *Scene) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth == 0 {
		return core.Vec3{}
	}

	hit, distance, isHit := s.intersect(ray)
	if !isHit {
		return s.background(ray)
	}

	hitPoint := ray.At(distance)
	bounce := hit.Scatter(ray, hitPoint, random)
	probe := s.RayColor(bounce, depth-1, random)
	return hit.Shade(probe)
}

// intersect tests the ray against every primitive and returns the nearest
// hit. Brute force, O(n) per ray.
func (s *Scene) intersect(ray core.Ray) (geometry.Primitive, float64, bool) {
	var closest geometry.Primitive
	var closestDistance float64
	for _, primitive := range s.Geometry {
		distance, isHit := primitive.Intersect(ray)
		if !isHit {
			continue
		}
		if closest == nil || distance < closestDistance {
			closest = primitive
			closestDistance = distance
		}
	}
	return closest, closestDistance, closest != nil
}

// background returns the sky color for a ray that escapes the scene.
// The gradient parameter runs past [0,1] for steep directions and
// extrapolates beyond the endpoints; the sky model accepts that.
func (s *Scene) background(ray core.Ray) core.Vec3 {
	t := 0.5*ray.Direction.Y + 1
	return s.BgStart.Lerp(s.BgEnd, t)
}

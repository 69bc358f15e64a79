package geometry

import (
	"math/rand"

	"github.com/okarlsson/go-sphere-tracer/pkg/core"
)

// Primitive is the capability every renderable shape provides: an
// intersection test, generation of a scattered bounce ray, and the
// material's color response to light arriving along that bounce.
type Primitive interface {
	// Intersect returns the distance along the ray to the nearest forward
	// intersection, and whether the ray hits at all.
	Intersect(ray core.Ray) (float64, bool)

	// Scatter produces the bounce ray leaving hitPoint.
	Scatter(rayIn core.Ray, hitPoint core.Vec3, random *rand.Rand) core.Ray

	// Shade converts the light arriving along the bounce (probe) into the
	// color leaving the surface.
	Shade(probe core.Vec3) core.Vec3
}

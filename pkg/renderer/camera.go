package renderer

import (
	"math/rand"

	"github.com/okarlsson/go-sphere-tracer/pkg/core"
)

// Horizontal field width of the image plane in world units.
const screenWidthUnits = 4.0

// Camera is a pinhole camera at the origin looking down -Z, with the image
// plane at z = -1. All geometry is precomputed at construction; the camera
// is immutable afterwards.
type Camera struct {
	unitsPerPixel    float64
	screenBottomLeft core.Vec3
}

// NewCamera creates a camera for the given image dimensions
func NewCamera(width, height int) *Camera {
	unitsPerPixel := screenWidthUnits / float64(width)
	heightUnits := screenWidthUnits * float64(height) / float64(width)

	return &Camera{
		unitsPerPixel:    unitsPerPixel,
		screenBottomLeft: core.NewVec3(-screenWidthUnits/2, -heightUnits/2, -1),
	}
}

// GetRay generates a ray through pixel (x, y), jittered by a random
// sub-pixel offset. Each call with the same coordinates yields a different
// ray; averaging them is what anti-aliases the image.
func (c *Camera) GetRay(x, y int, random *rand.Rand) core.Ray {
	jx := float64(x) + random.Float64()
	jy := float64(y) + random.Float64()

	target := c.screenBottomLeft.Add(core.NewVec3(jx*c.unitsPerPixel, jy*c.unitsPerPixel, 0))
	return core.NewRay(core.Vec3{}, target.Normalize())
}

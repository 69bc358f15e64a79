package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/okarlsson/go-sphere-tracer/pkg/core"
	"github.com/okarlsson/go-sphere-tracer/pkg/scene"
)

// Renderer drives the per-pixel Monte Carlo sampling loop for a scene.
// It holds only immutable state, so a single renderer is safe to share
// across workers as long as each worker brings its own random generator.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(s *scene.Scene) *Renderer {
	return &Renderer{
		scene:  s,
		camera: NewCamera(s.Width, s.Height),
	}
}

// RenderPixel computes the averaged, clamped color of one output pixel.
// Output rows run top to bottom while camera rows run bottom to top, so
// output row y maps to world row height-y.
func (r *Renderer) RenderPixel(x, y int, random *rand.Rand) core.Vec3 {
	worldRow := r.scene.Height - y

	accum := core.Vec3{}
	for sample := 0; sample < r.scene.Samples; sample++ {
		ray := r.camera.GetRay(x, worldRow, random)
		accum = accum.Add(r.scene.RayColor(ray, r.scene.RayBounces, random))
	}

	return accum.Divide(float64(r.scene.Samples)).Clamp(1.0)
}

// RenderBounds renders every pixel within bounds into the shared frame
// buffer. Bounds of concurrent calls never overlap, so no locking is
// needed around the writes.
func (r *Renderer) RenderBounds(bounds image.Rectangle, frame [][]core.Vec3, random *rand.Rand) RenderStats {
	stats := RenderStats{
		TotalPixels:  bounds.Dx() * bounds.Dy(),
		TotalSamples: bounds.Dx() * bounds.Dy() * r.scene.Samples,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			frame[y][x] = r.RenderPixel(x, y, random)
		}
	}

	return stats
}

// NewFrame allocates a frame buffer matching the scene dimensions
func (r *Renderer) NewFrame() [][]core.Vec3 {
	frame := make([][]core.Vec3, r.scene.Height)
	for y := range frame {
		frame[y] = make([]core.Vec3, r.scene.Width)
	}
	return frame
}

// FrameToImage converts a frame of clamped colors to an 8-bit RGBA image.
// Channels are scaled by 255 and truncated.
func (r *Renderer) FrameToImage(frame [][]core.Vec3) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.scene.Width, r.scene.Height))
	for y := range frame {
		for x := range frame[y] {
			img.SetRGBA(x, y, vecToColor(frame[y][x]))
		}
	}
	return img
}

// vecToColor converts a clamped color vector to an 8-bit display color
func vecToColor(v core.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(255 * v.X),
		G: uint8(255 * v.Y),
		B: uint8(255 * v.Z),
		A: 255,
	}
}

package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/okarlsson/go-sphere-tracer/pkg/core"
	"github.com/okarlsson/go-sphere-tracer/pkg/geometry"
)

// Config is the on-disk scene description. Points and colors are written
// as three-element arrays.
type Config struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Samples    int         `json:"samples"`
	RayBounces int         `json:"ray_bounces"`
	BgStart    [3]float64  `json:"bg_start"`
	BgEnd      [3]float64  `json:"bg_end"`
	Geometry   []SphereCfg `json:"geometry"`
}

// SphereCfg describes a single sphere. Emission defaults to 0, which marks
// the sphere as a regular reflective surface rather than a light.
type SphereCfg struct {
	Center    [3]float64 `json:"center"`
	Radius    float64    `json:"radius"`
	Color     [3]float64 `json:"color"`
	Roughness float64    `json:"roughness"`
	Emission  float64    `json:"emission,omitempty"`
}

// Load reads and parses a scene description file and builds the runtime
// scene. Unreadable or malformed files are fatal for the caller; the
// tracing core itself never validates scene values.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return cfg.Build()
}

// Build constructs the runtime scene from a parsed config.
func (cfg Config) Build() (*Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scene dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("samples must be positive, got %d", cfg.Samples)
	}
	if cfg.RayBounces < 0 {
		return nil, fmt.Errorf("ray_bounces must not be negative, got %d", cfg.RayBounces)
	}

	geom := make([]geometry.Primitive, 0, len(cfg.Geometry))
	for _, sc := range cfg.Geometry {
		geom = append(geom, geometry.NewSphere(
			vec(sc.Center), sc.Radius, vec(sc.Color), sc.Roughness, sc.Emission))
	}

	return &Scene{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Samples:    cfg.Samples,
		RayBounces: cfg.RayBounces,
		BgStart:    vec(cfg.BgStart),
		BgEnd:      vec(cfg.BgEnd),
		Geometry:   geom,
	}, nil
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

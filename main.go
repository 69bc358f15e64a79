package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/okarlsson/go-sphere-tracer/pkg/renderer"
	"github.com/okarlsson/go-sphere-tracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Path to the JSON scene description (or set SCENE_FILE)")
	outPath := flag.String("out", "render.png", "Output PNG file")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	tileSize := flag.Int("tile", 64, "Tile size in pixels")
	seed := flag.Int64("seed", 42, "Base random seed")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Tracer")
		fmt.Println("Usage: sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("The scene path may also be supplied via the SCENE_FILE environment variable.")
		return
	}

	path := *scenePath
	if path == "" {
		path = os.Getenv("SCENE_FILE")
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "No scene description given: use -scene or SCENE_FILE")
		os.Exit(1)
	}

	s, err := scene.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d, %d samples/pixel, %d bounces, %d spheres...\n",
		s.Width, s.Height, s.Samples, s.RayBounces, len(s.Geometry))

	config := renderer.Config{
		TileSize:   *tileSize,
		NumWorkers: *workers,
		Seed:       *seed,
	}
	img, stats := renderer.NewRenderer(s).Render(config)

	fmt.Printf("Render completed in %v (%d workers, %d tiles, %d rays)\n",
		stats.Elapsed, stats.Workers, stats.Tiles, stats.TotalSamples)

	file, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *outPath)
}

package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okarlsson/go-sphere-tracer/pkg/renderer"
	"github.com/okarlsson/go-sphere-tracer/pkg/scene"
)

// Server handles web requests for preview renders
type Server struct {
	port      int
	scenePath string
}

// NewServer creates a new preview server rendering the given scene file
func NewServer(port int, scenePath string) *Server {
	return &Server{port: port, scenePath: scenePath}
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting preview server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the configured scene and streams it back as a PNG.
// Query parameters width, height, samples, bounces and seed override the
// scene file for quick preview iterations.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, err := scene.Load(s.scenePath)
	if err != nil {
		log.Printf("Render request failed: %v", err)
		http.Error(w, fmt.Sprintf("loading scene: %v", err), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	sc.Width = intParam(query, "width", sc.Width)
	sc.Height = intParam(query, "height", sc.Height)
	sc.Samples = intParam(query, "samples", sc.Samples)
	sc.RayBounces = intParam(query, "bounces", sc.RayBounces)

	config := renderer.DefaultConfig()
	config.Seed = int64(intParam(query, "seed", int(config.Seed)))

	img, stats := renderer.NewRenderer(sc).Render(config)
	log.Printf("Rendered %dx%d at %d samples/pixel in %v",
		sc.Width, sc.Height, sc.Samples, stats.Elapsed)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG response: %v", err)
	}
}

// intParam returns a positive integer query parameter, or fallback when the
// parameter is absent or malformed
func intParam(query url.Values, name string, fallback int) int {
	value, err := strconv.Atoi(query.Get(name))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

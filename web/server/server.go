package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Request limits
const (
	maxImageSize = 2000
	maxWorkers   = 256
)

// Server handles web requests for the raycaster
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server serving scenes from scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string               // Scene ID (built-in name or scene file)
	Width     int                  // Image width (0 = scene default)
	Height    int                  // Image height (0 = scene default)
	Workers   int                  // Parallel workers (0 = auto-detect)
	Format    string               // Output format for /api/render
	Overrides scene.RenderSettings // Shading overrides from the query
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	HitPixels   int     `json:"hitPixels"`
	HitRatio    float64 `json:"hitRatio"`
	TotalChunks int     `json:"totalChunks"`
	DurationMs  int64   `json:"durationMs"`
}

func newStats(rs renderer.RenderStats) Stats {
	return Stats{
		TotalPixels: rs.TotalPixels,
		HitPixels:   rs.HitPixels,
		HitRatio:    rs.HitRatio(),
		TotalChunks: rs.TotalChunks,
		DurationMs:  rs.Duration.Milliseconds(),
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render-stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	groups, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene"), Format: query.Get("format")}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = output.FormatPNG
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 1, maxWorkers); err != nil {
		return nil, err
	}
	if req.Overrides.AmbientCoefficient, err = parseOptionalFloatParam(query, "ambient", 0, 10); err != nil {
		return nil, err
	}
	if req.Overrides.ShadowBias, err = parseOptionalFloatParam(query, "bias", 0, 1); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseOptionalFloatParam parses a float parameter, returning nil when absent
func parseOptionalFloatParam(values url.Values, key string, min, max float64) (*float64, error) {
	value := values.Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return nil, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
	}
	return &parsed, nil
}

// RenderingPipeline contains the configured scene and render settings
type RenderingPipeline struct {
	Scene  *scene.Scene
	Config renderer.RenderConfig
}

// setupRenderingPipeline creates the scene and resolves its render config.
// Query overrides win over the scene's own settings.
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj, err := scene.CreateFromDir(req.Scene, s.scenesDir, logger)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 {
		sceneObj.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Height = req.Height
	}

	config := renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), sceneObj.Settings)
	config = renderer.MergeRenderConfig(config, req.Overrides)
	config.NumWorkers = req.Workers

	return &RenderingPipeline{Scene: sceneObj, Config: config}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

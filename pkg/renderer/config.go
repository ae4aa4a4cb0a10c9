package renderer

import (
	"runtime"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// RenderConfig contains the tunable shading and scheduling constants
type RenderConfig struct {
	AmbientCoefficient float64    // Scale applied to the mean light colour for the ambient term
	ShadowBias         float64    // Self-shadow epsilon for shadow rays
	NumWorkers         int        // Number of parallel workers (0 = use CPU count)
	RowsPerChunk       int        // Image rows claimed per work item (0 = 1)
	Background         core.Color // Colour of pixels whose primary ray hits nothing
}

// DefaultRenderConfig returns the default shading constants
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		AmbientCoefficient: 0.1,
		ShadowBias:         1e-4,
		NumWorkers:         0, // Auto-detect CPU count
		RowsPerChunk:       1,
		Background:         core.Black,
	}
}

// MergeRenderConfig applies the overrides that are set on top of base
func MergeRenderConfig(base RenderConfig, overrides scene.RenderSettings) RenderConfig {
	result := base
	if overrides.AmbientCoefficient != nil {
		result.AmbientCoefficient = *overrides.AmbientCoefficient
	}
	if overrides.ShadowBias != nil {
		result.ShadowBias = *overrides.ShadowBias
	}
	if overrides.Background != nil {
		result.Background = *overrides.Background
	}
	return result
}

// workers resolves the worker count
func (c RenderConfig) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// rowsPerChunk resolves the chunk height
func (c RenderConfig) rowsPerChunk() int {
	if c.RowsPerChunk <= 0 {
		return 1
	}
	return c.RowsPerChunk
}

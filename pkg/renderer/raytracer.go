package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Raytracer shades pixels of one scene. It holds no per-pixel state and is
// safe for concurrent use by the workers of a render.
type Raytracer struct {
	scene   *scene.Scene
	shapes  []geometry.Shape
	config  RenderConfig
	ambient core.Color
	logger  core.Logger
}

// NewRaytracer creates a raytracer for a fully constructed scene
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:   s,
		shapes:  s.Shapes(),
		config:  config,
		ambient: ambientTerm(s.Lights, config.AmbientCoefficient),
		logger:  logger,
	}
}

// Render shades every pixel of img in parallel. Pixels whose primary ray hits
// nothing keep their current colour. On error the image is partially written
// and must be discarded.
func (rt *Raytracer) Render(ctx context.Context, img *Image) (RenderStats, error) {
	startTime := time.Now()

	chunks := NewChunkGrid(img.Width, img.Height, rt.config.rowsPerChunk())
	pool := NewWorkerPool(rt.config.workers())
	hits := make([]int, pool.GetNumWorkers())

	rt.logger.Printf("Rendering %dx%d with %d workers (%d chunks, %d objects, %d primitives, %d lights)\n",
		img.Width, img.Height, pool.GetNumWorkers(), len(chunks), len(rt.shapes),
		rt.scene.GetPrimitiveCount(), len(rt.scene.Lights))

	completed, err := pool.Run(ctx, chunks, func(workerID int, chunk Chunk) error {
		hits[workerID] += rt.RenderChunk(chunk, img)
		return nil
	})

	stats := RenderStats{
		TotalPixels:     img.Width * img.Height,
		TotalChunks:     len(chunks),
		ChunksPerWorker: completed,
		Duration:        time.Since(startTime),
	}
	for _, h := range hits {
		stats.HitPixels += h
	}

	if err != nil {
		return stats, fmt.Errorf("render aborted: %w", err)
	}

	rt.logger.Printf("Render completed in %v: %d/%d pixels hit geometry\n",
		stats.Duration, stats.HitPixels, stats.TotalPixels)
	return stats, nil
}

// RenderChunk shades the pixels inside chunk and returns how many hit
// geometry. Image row r is camera row height-r, so camera y grows upward.
func (rt *Raytracer) RenderChunk(chunk Chunk, img *Image) int {
	hits := 0
	for row := chunk.Bounds.Min.Y; row < chunk.Bounds.Max.Y; row++ {
		y := img.Height - row
		for x := chunk.Bounds.Min.X; x < chunk.Bounds.Max.X; x++ {
			if c, ok := rt.ShadePixel(x, y, img.Width, img.Height); ok {
				img.SetPixel(x, row, c)
				hits++
			}
		}
	}
	return hits
}

// ShadePixel computes the colour of camera-space pixel (x, y). It reports
// false when the primary ray hits nothing.
func (rt *Raytracer) ShadePixel(x, y, width, height int) (core.Color, bool) {
	ray := rt.scene.Camera.PrimaryRay(x, y, width, height)

	index, t, ok := geometry.NearestHit(rt.shapes, ray)
	if !ok {
		return core.Color{}, false
	}

	object := rt.scene.Objects[index]
	point := ray.At(t)
	normal := object.Shape.Normal(ray)

	return object.Color.Mul(rt.diffuse(point, normal).Add(rt.ambient)), true
}

// diffuse sums the Lambertian contribution of every light visible from point
func (rt *Raytracer) diffuse(point, normal core.Vec3) core.Color {
	total := core.Black
	for _, light := range rt.scene.Lights {
		toLight := light.Position.Subtract(point)
		distance := toLight.Length()
		direction := toLight.Divide(distance)

		if !rt.visible(core.NewRay(point, direction), distance) {
			continue
		}

		total = total.Add(light.Color.Scale(math.Max(0, normal.Dot(direction))))
	}
	return total
}

// visible reports whether nothing blocks shadowRay before distance. Hits
// within ShadowBias of the origin are the surface itself, and hits within
// ShadowBias of the light are not in front of it.
func (rt *Raytracer) visible(shadowRay core.Ray, distance float64) bool {
	bias := rt.config.ShadowBias
	for _, shape := range rt.shapes {
		t, ok := shape.Intersect(shadowRay)
		if !ok {
			continue
		}
		if math.IsNaN(t) {
			panic(&core.NumericError{Op: "shadow test", Value: t})
		}
		if t > bias && t+bias < distance {
			return false
		}
	}
	return true
}

// ambientTerm is the mean light colour scaled by coefficient; black with no lights
func ambientTerm(lights []scene.PointLight, coefficient float64) core.Color {
	if len(lights) == 0 {
		return core.Black
	}

	var r, g, b float64
	for _, light := range lights {
		r += float64(light.Color.R)
		g += float64(light.Color.G)
		b += float64(light.Color.B)
	}

	scale := coefficient / float64(len(lights))
	return core.NewColorFromFloats(r*scale, g*scale, b*scale)
}

// RenderScene allocates an image of the scene's size, filled with the
// background colour, and renders into it
func RenderScene(ctx context.Context, s *scene.Scene, config RenderConfig, logger core.Logger) (*Image, RenderStats, error) {
	img := NewImage(s.Width, s.Height, config.Background)
	stats, err := NewRaytracer(s, config, logger).Render(ctx, img)
	if err != nil {
		return nil, stats, err
	}
	return img, stats, nil
}

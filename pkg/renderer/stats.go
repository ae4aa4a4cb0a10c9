package renderer

import "time"

// RenderStats contains statistics about one render call
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	HitPixels       int           // Pixels whose primary ray hit an object
	TotalChunks     int           // Number of work items
	ChunksPerWorker []int         // Chunks completed by each worker
	Duration        time.Duration // Wall time of the render
}

// HitRatio returns the fraction of pixels that hit geometry
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

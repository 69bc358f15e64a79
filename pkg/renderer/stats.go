package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int           // Number of pixels rendered
	TotalSamples int           // Number of camera rays fired
	Tiles        int           // Number of tiles the image was split into
	Workers      int           // Number of parallel workers used
	Elapsed      time.Duration // Wall-clock render time
}

// merge folds the statistics of a finished tile into the totals
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
}

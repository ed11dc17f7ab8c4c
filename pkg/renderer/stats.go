package renderer

import "time"

// RenderStats contains statistics about one render pass
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	PrimaryRays int           // Camera rays traced
	ShadowRays  int           // Shadow rays traced toward the sun
	HitCount    int           // Primary rays that hit a primitive
	Duration    time.Duration // Wall-clock time for the pass
}

// merge folds the statistics of one tile into the pass total
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.ShadowRays += other.ShadowRays
	s.HitCount += other.HitCount
}

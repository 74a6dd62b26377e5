package measure

import (
	"math"

	"go.viam.com/rdk/pointcloud"
)

// fallbackMeasurement produces a measurement from plain axis-aligned
// bounding-box extents. It is the terminal safety net: invoked when landmark
// estimation produces NaN or the validated triplet fails the plausibility
// check, and it never fails itself.
//
// The unit rule here is deliberately simpler than DetectUnit: a single branch
// (max extent < 1 means meters, otherwise already mm). The two heuristics
// diverge on malformed input and are kept separate on purpose.
func fallbackMeasurement(meta pointcloud.MetaData, vertexCount int, cfg FallbackConfig) Measurement {
	length := meta.MaxZ - meta.MinZ
	width := meta.MaxX - meta.MinX
	height := meta.MaxY - meta.MinY

	maxExtent := math.Max(length, math.Max(width, height))
	multiplier := 1.0
	if maxExtent < 1 {
		multiplier = 1000
	}

	length *= multiplier
	width *= multiplier
	height *= multiplier

	// Floors guarantee non-degenerate downstream classification.
	if !(length >= cfg.MinLengthMm) { // NaN lands here too
		length = cfg.MinLengthMm
	}
	if !(width >= cfg.MinWidthMm) {
		width = cfg.MinWidthMm
	}
	if !(height >= cfg.MinHeightMm) {
		height = cfg.MinHeightMm
	}

	return Measurement{
		Length:     length,
		Width:      width,
		Height:     height,
		Unit:       "mm",
		Confidence: ConfidenceFallback,
		Landmarks: Landmarks{
			HeelZ:    meta.MinZ,
			ToeZ:     meta.MaxZ,
			MedialX:  meta.MinX,
			LateralX: meta.MaxX,
			SoleY:    meta.MinY,
			InstepY:  meta.MaxY,
		},
		Bounds:      meta,
		VertexCount: vertexCount,
		Fallback:    true,
	}
}

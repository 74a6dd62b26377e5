package measure

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/pointcloud"
)

// lengthEstimate is the output of estimateLength, in unscaled scan units.
type lengthEstimate struct {
	Length    float64
	HeelZ     float64
	ToeZ      float64
	SoleCount int
}

// widthEstimate is the output of estimateWidth, in unscaled scan units.
type widthEstimate struct {
	Width    float64
	MedialX  float64
	LateralX float64
	BandSize int
}

// heightEstimate is the output of estimateHeight, in unscaled scan units.
type heightEstimate struct {
	Height   float64
	SoleY    float64
	InstepY  float64
	BandSize int
}

// estimateLength measures heel-to-toe length at floor contact. Vertices are
// restricted to the lowest LengthSoleFraction of the vertical extent so that
// overhanging toe or heel geometry above the sole cannot inflate the result.
// An empty filtered set degrades to the full-cloud Z extent.
func estimateLength(cloud pointcloud.PointCloud, cfg LandmarkConfig) lengthEstimate {
	meta := cloud.MetaData()
	if cloud.Size() == 0 {
		return lengthEstimate{Length: meta.MaxZ - meta.MinZ, HeelZ: meta.MinZ, ToeZ: meta.MaxZ}
	}

	soleThreshold := meta.MinY + (meta.MaxY-meta.MinY)*cfg.LengthSoleFraction

	minZ := math.MaxFloat64
	maxZ := -math.MaxFloat64
	count := 0
	cloud.Iterate(0, 0, func(pt r3.Vector, _ pointcloud.Data) bool {
		if pt.Y <= soleThreshold {
			count++
			if pt.Z < minZ {
				minZ = pt.Z
			}
			if pt.Z > maxZ {
				maxZ = pt.Z
			}
		}
		return true
	})

	if count == 0 {
		return lengthEstimate{Length: meta.MaxZ - meta.MinZ, HeelZ: meta.MinZ, ToeZ: meta.MaxZ}
	}
	return lengthEstimate{Length: maxZ - minZ, HeelZ: minZ, ToeZ: maxZ, SoleCount: count}
}

// estimateWidth measures the foot at the ball (metatarsal) cross-section: the
// BallBandMin-BallBandMax stretch of the length axis, restricted to sole
// vertices. The global X extent would be skewed by ankle geometry or scan
// artifacts. An empty filtered set degrades to the full-cloud X extent.
func estimateWidth(cloud pointcloud.PointCloud, cfg LandmarkConfig) widthEstimate {
	meta := cloud.MetaData()
	if cloud.Size() == 0 {
		return widthEstimate{Width: meta.MaxX - meta.MinX, MedialX: meta.MinX, LateralX: meta.MaxX}
	}

	footLength := meta.MaxZ - meta.MinZ
	bandLo := meta.MinZ + footLength*cfg.BallBandMin
	bandHi := meta.MinZ + footLength*cfg.BallBandMax
	soleThreshold := meta.MinY + (meta.MaxY-meta.MinY)*cfg.WidthSoleFraction

	minX := math.MaxFloat64
	maxX := -math.MaxFloat64
	count := 0
	cloud.Iterate(0, 0, func(pt r3.Vector, _ pointcloud.Data) bool {
		if pt.Z >= bandLo && pt.Z <= bandHi && pt.Y <= soleThreshold {
			count++
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
		}
		return true
	})

	if count == 0 {
		return widthEstimate{Width: meta.MaxX - meta.MinX, MedialX: meta.MinX, LateralX: meta.MaxX}
	}
	return widthEstimate{Width: maxX - minX, MedialX: minX, LateralX: maxX, BandSize: count}
}

// estimateHeight measures instep height: the highest point within the middle
// InstepBandMin-InstepBandMax of the length axis, relative to the single
// lowest point of the whole scan. Measuring at the heel or toe tip would give
// ankle or toe-cap height instead. An empty band degrades to the full-cloud
// Y extent.
func estimateHeight(cloud pointcloud.PointCloud, cfg LandmarkConfig) heightEstimate {
	meta := cloud.MetaData()
	if cloud.Size() == 0 {
		return heightEstimate{Height: meta.MaxY - meta.MinY, SoleY: meta.MinY, InstepY: meta.MaxY}
	}

	soleY := meta.MinY
	footLength := meta.MaxZ - meta.MinZ
	bandLo := meta.MinZ + footLength*cfg.InstepBandMin
	bandHi := meta.MinZ + footLength*cfg.InstepBandMax

	maxY := -math.MaxFloat64
	count := 0
	cloud.Iterate(0, 0, func(pt r3.Vector, _ pointcloud.Data) bool {
		if pt.Z >= bandLo && pt.Z <= bandHi {
			count++
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
		return true
	})

	if count == 0 {
		return heightEstimate{Height: meta.MaxY - soleY, SoleY: soleY, InstepY: meta.MaxY}
	}
	return heightEstimate{Height: maxY - soleY, SoleY: soleY, InstepY: maxY, BandSize: count}
}

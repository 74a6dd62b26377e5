// Package footscan drives the dual-foot scan workflow: load scan files,
// measure each foot through the measurement engine, compare bilaterally, and
// assemble a report.
package footscan

import (
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/pointcloud"
)

// ScanOptions controls scan loading and preprocessing.
type ScanOptions struct {
	KeepOutliers  bool    // Skip statistical outlier removal
	TargetPoints  int     // Downsample to roughly this many points; 0 = no downsampling
	OutlierMeanK  int     // K for the statistical outlier filter
	OutlierStdDev float64 // Standard deviation threshold for the outlier filter
}

// DefaultScanOptions returns the preprocessing defaults.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		TargetPoints:  0,
		OutlierMeanK:  8,
		OutlierStdDev: 1.25,
	}
}

// LoadScan reads a scan file into a point cloud and applies preprocessing.
// File parsing is delegated entirely to the pointcloud loader; this package
// only sees vertices.
func LoadScan(path string, opts ScanOptions, logger logging.Logger) (pointcloud.PointCloud, error) {
	cloud, err := pointcloud.NewFromFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("loading scan %s: %w", path, err)
	}
	logger.Infof("Loaded %d points from %s", cloud.Size(), path)

	if !opts.KeepOutliers && cloud.Size() > opts.OutlierMeanK {
		filtered := pointcloud.NewBasicEmpty()
		filterFn, err := pointcloud.StatisticalOutlierFilter(opts.OutlierMeanK, opts.OutlierStdDev)
		if err != nil {
			return nil, fmt.Errorf("building outlier filter: %w", err)
		}
		if err := filterFn(cloud, filtered); err != nil {
			return nil, fmt.Errorf("outlier removal: %w", err)
		}
		logger.Infof("Outlier removal kept %d of %d points", filtered.Size(), cloud.Size())
		cloud = filtered
	}

	if opts.TargetPoints > 0 && cloud.Size() > opts.TargetPoints {
		cloud = downsample(cloud, opts.TargetPoints, logger)
	}

	return cloud, nil
}

// downsample strides through a point cloud to approximately the target count.
func downsample(cloud pointcloud.PointCloud, targetPoints int, logger logging.Logger) pointcloud.PointCloud {
	step := cloud.Size() / targetPoints
	if step < 1 {
		step = 1
	}
	out := pointcloud.NewBasicEmpty()
	i := 0
	cloud.Iterate(0, 0, func(p r3.Vector, d pointcloud.Data) bool {
		if i%step == 0 {
			if err := out.Set(p, d); err != nil {
				logger.Warnf("Failed to add point: %v", err)
			}
		}
		i++
		return true
	})
	logger.Infof("Downsampled %d points to %d", cloud.Size(), out.Size())
	return out
}

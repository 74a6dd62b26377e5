// Package measure turns an unstructured foot-scan point cloud into calibrated
// millimeter dimensions, shape/arch classification, and bilateral comparison.
//
// The package assumes the scan is roughly aligned to the scanner axes: Y is
// vertical, Z runs heel to toe, X is medial-lateral. A single rotation-only
// orientation correction may be applied per measurement; beyond that the axis
// convention is trusted, not verified.
package measure

import (
	"go.viam.com/rdk/pointcloud"
)

// FootSide identifies which foot a scan or measurement belongs to.
type FootSide int

const (
	// SideLeft is the left foot.
	SideLeft FootSide = iota
	// SideRight is the right foot.
	SideRight
)

func (s FootSide) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// UnitDetection is the inferred conversion from scan units to millimeters.
// Unit is always "mm"; Multiplier alone encodes the conversion.
type UnitDetection struct {
	Multiplier float64
	Unit       string
	Confidence string
}

// Landmarks holds the extremal coordinates each estimator settled on, in
// rotated, unscaled scan coordinates.
type Landmarks struct {
	HeelZ    float64
	ToeZ     float64
	MedialX  float64
	LateralX float64
	SoleY    float64
	InstepY  float64
}

// Measurement is the result of one measurement pass. Length, Width, and
// Height are millimeters. Cloud, when non-nil, holds the rotated but unscaled
// vertices the estimates were taken from; the unit multiplier is applied only
// to the three scalars, never to stored vertices.
type Measurement struct {
	Length      float64
	Width       float64
	Height      float64
	Unit        string
	Confidence  string
	Landmarks   Landmarks
	Cloud       pointcloud.PointCloud
	Bounds      pointcloud.MetaData
	VertexCount int
	Fallback    bool
}

// RatioSet holds the derived shape ratios for a measurement.
type RatioSet struct {
	LengthToWidth     float64
	HeightToLengthPct float64
}

// Classification labels a foot's shape and arch type.
type Classification struct {
	FootType    string
	ArchType    string
	Description string
}

// Result bundles everything one engine pass produces.
type Result struct {
	Measurement    Measurement
	Ratios         RatioSet
	Classification Classification
}

// Comparison is the bilateral left/right symmetry record. Diffs are
// millimeters; symmetry values are percentages in [0, 100].
type Comparison struct {
	LengthDiff        float64
	WidthDiff         float64
	HeightDiff        float64
	LengthSymmetryPct float64
	WidthSymmetryPct  float64
	HeightSymmetryPct float64
	SymmetryScorePct  float64
	Severity          string
}

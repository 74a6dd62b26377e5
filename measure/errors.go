package measure

import "errors"

var (
	// ErrNilCloud is returned when a nil point cloud is passed.
	ErrNilCloud = errors.New("point cloud is nil")

	// ErrEmptyScan is returned when a scan contains no vertices. This is the
	// one condition the engine aborts on instead of degrading, since there is
	// nothing to fall back to.
	ErrEmptyScan = errors.New("scan contains no vertices")

	// ErrNotRotationOnly is returned when an orientation matrix carries scale
	// or shear. Measurement requires a pure rotation.
	ErrNotRotationOnly = errors.New("orientation matrix is not rotation-only")

	// ErrBadMatrixShape is returned when an orientation matrix is not 4x4.
	ErrBadMatrixShape = errors.New("orientation matrix must be 4x4")
)

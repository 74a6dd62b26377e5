package measure

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/rdk/pointcloud"
	"go.viam.com/rdk/spatialmath"
)

const rotationTolerance = 1e-6

// PoseFromMatrix converts a 4x4 homogeneous transform into a pose, rejecting
// anything that is not a pure rotation plus translation. Scanner exports are
// already scaled; a transform carrying scale would silently corrupt the unit
// detection, so scale and shear are errors here.
func PoseFromMatrix(m mat.Matrix) (spatialmath.Pose, error) {
	rows, cols := m.Dims()
	if rows != 4 || cols != 4 {
		return nil, ErrBadMatrixShape
	}

	r := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, m.At(i, j))
		}
	}

	// Rotation-only: R^T * R must be the identity and det(R) must be +1.
	var rtr mat.Dense
	rtr.Mul(r.T(), r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(rtr.At(i, j)-want) > rotationTolerance {
				return nil, ErrNotRotationOnly
			}
		}
	}
	if math.Abs(mat.Det(r)-1) > rotationTolerance {
		return nil, ErrNotRotationOnly
	}

	rm, err := spatialmath.NewRotationMatrix(r.RawMatrix().Data)
	if err != nil {
		return nil, err
	}
	translation := r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)}
	return spatialmath.NewPose(translation, rm), nil
}

// TransformPoints maps a cloud's vertices through the given pose, returning a
// new cloud and leaving the input untouched. The engine uses it to apply the
// orientation correction; callers use it to map stored original-space
// vertices back into a display frame.
func TransformPoints(cloud pointcloud.PointCloud, pose spatialmath.Pose) (pointcloud.PointCloud, error) {
	if cloud == nil {
		return nil, ErrNilCloud
	}
	if pose == nil {
		return cloud, nil
	}
	out := pointcloud.NewBasicPointCloud(cloud.Size())
	if err := pointcloud.ApplyOffset(cloud, pose, out); err != nil {
		return nil, err
	}
	return out, nil
}

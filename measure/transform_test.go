package measure

import (
	"errors"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/rdk/pointcloud"
)

func TestPoseFromMatrix_Identity(t *testing.T) {
	m := mat.NewDense(4, 4, []float64{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	})

	pose, err := PoseFromMatrix(m)
	if err != nil {
		t.Fatalf("PoseFromMatrix failed: %v", err)
	}
	pt := pose.Point()
	if !approx(pt.X, 10, 1e-12) || !approx(pt.Y, 20, 1e-12) || !approx(pt.Z, 30, 1e-12) {
		t.Errorf("translation (%v, %v, %v), want (10, 20, 30)", pt.X, pt.Y, pt.Z)
	}
}

func TestPoseFromMatrix_Rotation(t *testing.T) {
	// 90 degrees about Z: X -> Y.
	m := mat.NewDense(4, 4, []float64{
		0, -1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})

	pose, err := PoseFromMatrix(m)
	if err != nil {
		t.Fatalf("PoseFromMatrix failed: %v", err)
	}

	cloud := pointcloud.NewBasicEmpty()
	if err := cloud.Set(r3.Vector{X: 1}, nil); err != nil {
		t.Fatal(err)
	}
	out, err := TransformPoints(cloud, pose)
	if err != nil {
		t.Fatalf("TransformPoints failed: %v", err)
	}

	var got r3.Vector
	out.Iterate(0, 0, func(pt r3.Vector, _ pointcloud.Data) bool {
		got = pt
		return true
	})
	if !approx(got.X, 0, 1e-9) || !approx(got.Y, 1, 1e-9) || !approx(got.Z, 0, 1e-9) {
		t.Errorf("rotated point (%v, %v, %v), want (0, 1, 0)", got.X, got.Y, got.Z)
	}
}

func TestPoseFromMatrix_RejectsScale(t *testing.T) {
	m := mat.NewDense(4, 4, []float64{
		2, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	if _, err := PoseFromMatrix(m); !errors.Is(err, ErrNotRotationOnly) {
		t.Errorf("err = %v, want ErrNotRotationOnly", err)
	}

	// Reflections (det = -1) are not rotations either.
	m = mat.NewDense(4, 4, []float64{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	if _, err := PoseFromMatrix(m); !errors.Is(err, ErrNotRotationOnly) {
		t.Errorf("reflection: err = %v, want ErrNotRotationOnly", err)
	}
}

func TestPoseFromMatrix_RejectsWrongShape(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	if _, err := PoseFromMatrix(m); !errors.Is(err, ErrBadMatrixShape) {
		t.Errorf("err = %v, want ErrBadMatrixShape", err)
	}
}

func TestTransformPoints_NilPose(t *testing.T) {
	cloud := pointcloud.NewBasicEmpty()
	if err := cloud.Set(r3.Vector{X: 1, Y: 2, Z: 3}, nil); err != nil {
		t.Fatal(err)
	}
	out, err := TransformPoints(cloud, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Size() != 1 {
		t.Errorf("size %d, want 1", out.Size())
	}

	if _, err := TransformPoints(nil, nil); !errors.Is(err, ErrNilCloud) {
		t.Errorf("nil cloud: err = %v, want ErrNilCloud", err)
	}
}

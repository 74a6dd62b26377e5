package measure

import (
	"testing"

	"go.viam.com/rdk/pointcloud"
)

func TestFallbackMeasurement_Floors(t *testing.T) {
	cfg := DefaultConfig().Fallback

	// Degenerate geometry: every vertex identical, zero-extent bounding box.
	m := fallbackMeasurement(pointcloud.MetaData{
		MinX: 5, MaxX: 5, MinY: 5, MaxY: 5, MinZ: 5, MaxZ: 5,
	}, 100, cfg)

	if m.Length < 50 {
		t.Errorf("length %v below floor 50", m.Length)
	}
	if m.Width < 30 {
		t.Errorf("width %v below floor 30", m.Width)
	}
	if m.Height < 20 {
		t.Errorf("height %v below floor 20", m.Height)
	}
	if m.Confidence != ConfidenceFallback {
		t.Errorf("confidence %q, want %q", m.Confidence, ConfidenceFallback)
	}
	if !m.Fallback {
		t.Error("Fallback flag not set")
	}
}

func TestFallbackMeasurement_MeterScale(t *testing.T) {
	cfg := DefaultConfig().Fallback

	// Max extent below 1: the one-branch rule assumes meters.
	m := fallbackMeasurement(pointcloud.MetaData{
		MinX: 0, MaxX: 0.1, MinY: 0, MaxY: 0.06, MinZ: 0, MaxZ: 0.26,
	}, 500, cfg)

	if got, want := m.Length, 260.0; !approx(got, want, 1e-9) {
		t.Errorf("length %v, want %v", got, want)
	}
	if got, want := m.Width, 100.0; !approx(got, want, 1e-9) {
		t.Errorf("width %v, want %v", got, want)
	}
	if got, want := m.Height, 60.0; !approx(got, want, 1e-9) {
		t.Errorf("height %v, want %v", got, want)
	}
}

func TestFallbackMeasurement_MillimeterScale(t *testing.T) {
	cfg := DefaultConfig().Fallback

	// Max extent at or above 1: taken as already millimeters. This is a
	// coarser rule than DetectUnit by design; centimeter-scale input stays
	// unscaled here.
	m := fallbackMeasurement(pointcloud.MetaData{
		MinX: 0, MaxX: 90, MinY: 0, MaxY: 55, MinZ: 0, MaxZ: 240,
	}, 500, cfg)

	if got, want := m.Length, 240.0; !approx(got, want, 1e-9) {
		t.Errorf("length %v, want %v", got, want)
	}
	if m.VertexCount != 500 {
		t.Errorf("vertex count %d, want 500", m.VertexCount)
	}
}

package history

import (
	"path/filepath"
	"testing"

	"github.com/soletrace/footscan/measure"
	"github.com/soletrace/footscan/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "footscan.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func testReport() *report.Report {
	left := &measure.Result{
		Measurement:    measure.Measurement{Length: 255, Width: 98, Height: 58, Unit: "mm", Confidence: measure.ConfidenceMillimeter},
		Classification: measure.Classify(255, 98, 58),
	}
	right := &measure.Result{
		Measurement:    measure.Measurement{Length: 250, Width: 100, Height: 60, Unit: "mm", Confidence: measure.ConfidenceMillimeter},
		Classification: measure.Classify(250, 100, 60),
	}
	cmp := measure.Compare(left.Measurement, right.Measurement)
	return report.New(left, right, &cmp)
}

func TestSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	rep := testReport()
	if err := store.Save(rep); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (left and right)", len(entries))
	}
	for _, e := range entries {
		if e.ID != rep.ID.String() {
			t.Errorf("entry id %q, want %q", e.ID, rep.ID)
		}
		if e.SymmetryPct == nil {
			t.Error("entry missing symmetry")
		}
	}
}

func TestRecent_Empty(t *testing.T) {
	store := openTestStore(t)
	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from empty store", len(entries))
	}
}

func TestSave_SingleFoot(t *testing.T) {
	store := openTestStore(t)

	left := &measure.Result{
		Measurement:    measure.Measurement{Length: 255, Width: 98, Height: 58, Unit: "mm"},
		Classification: measure.Classify(255, 98, 58),
	}
	if err := store.Save(report.New(left, nil, nil)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].SymmetryPct != nil {
		t.Error("single-foot entry should have no symmetry")
	}
}

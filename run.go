package footscan

import (
	"context"
	"fmt"

	"github.com/soletrace/footscan/measure"
	"github.com/soletrace/footscan/report"
)

// Run executes the full dual-foot flow: load left → measure left → load
// right → measure right → compare → report → persist. The two feet are
// measured sequentially; their records live on the session independently.
func Run(ctx context.Context, s *Session, leftPath, rightPath string, opts ScanOptions) (*report.Report, error) {
	steps := []struct {
		name string
		side measure.FootSide
		path string
	}{
		{"MeasureLeft", measure.SideLeft, leftPath},
		{"MeasureRight", measure.SideRight, rightPath},
	}

	for _, step := range steps {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.logger.Infof("=== %s ===", step.name)
		cloud, err := LoadScan(step.path, opts, s.logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
		if _, err := s.MeasureFoot(ctx, step.side, cloud, nil); err != nil {
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	comparison, err := s.Compare()
	if err != nil {
		return nil, err
	}

	rep := report.New(s.Left(), s.Right(), comparison)
	if s.store != nil {
		if err := s.store.Save(rep); err != nil {
			// Persistence is best-effort; the report is still usable.
			s.logger.Warnf("Failed to save report to history: %v", err)
		}
	}
	return rep, nil
}

// MeasureSingle runs the single-foot flow: load, measure, report, persist.
func MeasureSingle(ctx context.Context, s *Session, side measure.FootSide, path string, opts ScanOptions) (*report.Report, error) {
	cloud, err := LoadScan(path, opts, s.logger)
	if err != nil {
		return nil, err
	}
	if _, err := s.MeasureFoot(ctx, side, cloud, nil); err != nil {
		return nil, err
	}

	var rep *report.Report
	if side == measure.SideLeft {
		rep = report.New(s.Left(), nil, nil)
	} else {
		rep = report.New(nil, s.Right(), nil)
	}
	if s.store != nil {
		if err := s.store.Save(rep); err != nil {
			s.logger.Warnf("Failed to save report to history: %v", err)
		}
	}
	return rep, nil
}

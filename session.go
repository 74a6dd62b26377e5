package footscan

import (
	"context"
	"fmt"

	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/pointcloud"
	"go.viam.com/rdk/spatialmath"

	"github.com/soletrace/footscan/internal/history"
	"github.com/soletrace/footscan/measure"
)

// Session holds the state for one dual-foot scan session. The engine itself
// is stateless per call; the session is the caller that keeps the left and
// right records, and it measures the two feet sequentially, never
// concurrently.
type Session struct {
	logger logging.Logger
	engine *measure.Engine
	store  *history.Store // may be nil; persistence is optional

	left  *measure.Result
	right *measure.Result
}

// NewSession creates a session. A nil cfg selects the engine defaults; store
// may be nil to skip persistence.
func NewSession(cfg *measure.Config, logger logging.Logger, store *history.Store) *Session {
	if logger == nil {
		logger = logging.NewLogger("footscan")
	}
	return &Session{
		logger: logger,
		engine: measure.NewEngine(cfg, logger, nil),
		store:  store,
	}
}

// MeasureFoot measures one foot and records the result on the session side.
func (s *Session) MeasureFoot(ctx context.Context, side measure.FootSide, cloud pointcloud.PointCloud, orientation spatialmath.Pose) (*measure.Result, error) {
	result, err := s.engine.Measure(ctx, cloud, orientation)
	if err != nil {
		return nil, fmt.Errorf("measuring %s foot: %w", side, err)
	}

	m := result.Measurement
	s.logger.Infof("%s foot: %.1f x %.1f x %.1f mm, %s / %s (%s)",
		side, m.Length, m.Width, m.Height,
		result.Classification.FootType, result.Classification.ArchType, m.Confidence)

	switch side {
	case measure.SideLeft:
		s.left = result
	case measure.SideRight:
		s.right = result
	}
	return result, nil
}

// Left returns the session's left-foot result, if measured.
func (s *Session) Left() *measure.Result { return s.left }

// Right returns the session's right-foot result, if measured.
func (s *Session) Right() *measure.Result { return s.right }

// Compare returns the bilateral comparison for the session. Both feet must
// have been measured.
func (s *Session) Compare() (*measure.Comparison, error) {
	if s.left == nil || s.right == nil {
		return nil, fmt.Errorf("bilateral comparison needs both feet (left=%v, right=%v)", s.left != nil, s.right != nil)
	}
	c := measure.Compare(s.left.Measurement, s.right.Measurement)
	s.logger.Infof("Bilateral symmetry %.0f%% (%s)", c.SymmetryScorePct, c.Severity)
	return &c, nil
}

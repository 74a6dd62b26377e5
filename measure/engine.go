package measure

import (
	"context"
	"fmt"
	"math"

	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/pointcloud"
	"go.viam.com/rdk/spatialmath"
)

// Stage identifies a point in the measurement lifecycle.
type Stage int

const (
	// StageStarted fires once per call, before any work. On invalid input it
	// carries the rejection and no further events follow.
	StageStarted Stage = iota
	// StageProgress fires as pipeline steps finish.
	StageProgress
	// StageComplete fires with the final record, primary or fallback.
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageStarted:
		return "started"
	case StageProgress:
		return "progress"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// StatusEvent is one lifecycle notification. Err is set only on the
// invalid-input started event.
type StatusEvent struct {
	Stage   Stage
	Message string
	Err     error
}

// StatusListener receives lifecycle notifications during a measurement call,
// for hosts that display interim status. Listeners are called synchronously
// on the measuring goroutine.
type StatusListener interface {
	MeasurementStatus(StatusEvent)
}

// Engine runs the measurement pipeline. It holds no per-call state: Measure
// returns a fresh result each time, so a dual-foot caller keeps the left and
// right records itself.
type Engine struct {
	cfg      Config
	logger   logging.Logger
	listener StatusListener
}

// NewEngine creates an Engine. A nil cfg selects DefaultConfig; listener may
// be nil.
func NewEngine(cfg *Config, logger logging.Logger, listener StatusListener) *Engine {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}
	if logger == nil {
		logger = logging.NewLogger("measure")
	}
	return &Engine{cfg: *cfg, logger: logger, listener: listener}
}

// Measure runs one full measurement pass: orient, detect unit, estimate the
// three dimensions, validate, fall back to bounding-box extents if needed,
// and classify. It returns an error only for missing input; every other
// failure degrades to a low-confidence fallback record so the caller always
// has numbers to show.
func (e *Engine) Measure(ctx context.Context, cloud pointcloud.PointCloud, orientation spatialmath.Pose) (result *Result, err error) {
	if cloud == nil || cloud.Size() == 0 {
		e.notify(StatusEvent{Stage: StageStarted, Message: "scan rejected: no vertices", Err: ErrEmptyScan})
		return nil, ErrEmptyScan
	}

	vertexCount := cloud.Size()
	e.notify(StatusEvent{Stage: StageStarted, Message: fmt.Sprintf("measuring %d vertices", vertexCount)})

	// Structural failures anywhere below degrade to the fallback record
	// rather than escaping the engine.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("measurement pass panicked, using fallback: %v", r)
			result = e.fallbackResult(cloud.MetaData(), vertexCount)
			err = nil
		}
	}()

	// Orient: measurement happens in the same corrected orientation the scene
	// displays, so a display-side auto-rotation cannot skew the axis bands.
	oriented := cloud
	if orientation != nil {
		transformed, terr := TransformPoints(cloud, orientation)
		if terr != nil {
			e.logger.Warnf("orientation transform failed, using fallback: %v", terr)
			return e.fallbackResult(cloud.MetaData(), vertexCount), nil
		}
		oriented = transformed
		e.notify(StatusEvent{Stage: StageProgress, Message: "orientation applied"})
	}

	meta := oriented.MetaData()
	maxDim := math.Max(meta.MaxZ-meta.MinZ, math.Max(meta.MaxX-meta.MinX, meta.MaxY-meta.MinY))
	if maxDim <= 0 || math.IsNaN(maxDim) {
		e.logger.Warnf("degenerate bounding box (max dimension %.6f), using fallback", maxDim)
		return e.fallbackResult(cloud.MetaData(), vertexCount), nil
	}

	unit := DetectUnit(maxDim)
	e.logger.Debugf("unit detection: max dimension %.4f -> multiplier %.1f (%s)", maxDim, unit.Multiplier, unit.Confidence)
	e.notify(StatusEvent{Stage: StageProgress, Message: "unit detected: " + unit.Confidence})

	lengthEst := estimateLength(oriented, e.cfg.Landmark)
	widthEst := estimateWidth(oriented, e.cfg.Landmark)
	heightEst := estimateHeight(oriented, e.cfg.Landmark)

	lengthMm := lengthEst.Length * unit.Multiplier
	widthMm := widthEst.Width * unit.Multiplier
	heightMm := heightEst.Height * unit.Multiplier
	e.logger.Debugf("landmark estimates: length %.1fmm (sole %d pts), width %.1fmm (ball %d pts), height %.1fmm (instep %d pts)",
		lengthMm, lengthEst.SoleCount, widthMm, widthEst.BandSize, heightMm, heightEst.BandSize)

	if math.IsNaN(lengthMm) || math.IsNaN(widthMm) || math.IsNaN(heightMm) ||
		!ValidateDimensions(lengthMm, widthMm, heightMm, e.cfg.Validation) {
		// Consistency over precision: one implausible dimension rejects all
		// three. The fallback recomputes from the original geometry's plain
		// bounding box, independent of the oriented pass.
		e.logger.Warnf("validation rejected triplet (%.1f, %.1f, %.1f)mm, using fallback", lengthMm, widthMm, heightMm)
		e.notify(StatusEvent{Stage: StageProgress, Message: "validation failed, falling back to bounding box"})
		return e.fallbackResult(cloud.MetaData(), vertexCount), nil
	}

	measurement := Measurement{
		Length:     lengthMm,
		Width:      widthMm,
		Height:     heightMm,
		Unit:       unit.Unit,
		Confidence: unit.Confidence,
		Landmarks: Landmarks{
			HeelZ:    lengthEst.HeelZ,
			ToeZ:     lengthEst.ToeZ,
			MedialX:  widthEst.MedialX,
			LateralX: widthEst.LateralX,
			SoleY:    heightEst.SoleY,
			InstepY:  heightEst.InstepY,
		},
		Cloud:       oriented,
		Bounds:      meta,
		VertexCount: vertexCount,
	}

	result = &Result{
		Measurement:    measurement,
		Ratios:         Ratios(lengthMm, widthMm, heightMm),
		Classification: Classify(lengthMm, widthMm, heightMm),
	}
	e.notify(StatusEvent{Stage: StageComplete, Message: fmt.Sprintf(
		"measured %.1f x %.1f x %.1f mm (%s)", lengthMm, widthMm, heightMm, unit.Confidence)})
	return result, nil
}

// fallbackResult wraps the bounding-box fallback with ratios and
// classification so it is interchangeable with a primary result.
func (e *Engine) fallbackResult(meta pointcloud.MetaData, vertexCount int) *Result {
	m := fallbackMeasurement(meta, vertexCount, e.cfg.Fallback)
	r := &Result{
		Measurement:    m,
		Ratios:         Ratios(m.Length, m.Width, m.Height),
		Classification: Classify(m.Length, m.Width, m.Height),
	}
	e.notify(StatusEvent{Stage: StageComplete, Message: fmt.Sprintf(
		"fallback measurement %.1f x %.1f x %.1f mm", m.Length, m.Width, m.Height)})
	return r
}

func (e *Engine) notify(ev StatusEvent) {
	if ev.Err != nil {
		e.logger.Warnf("measurement %s: %s (%v)", ev.Stage, ev.Message, ev.Err)
	} else {
		e.logger.Infof("measurement %s: %s", ev.Stage, ev.Message)
	}
	if e.listener != nil {
		e.listener.MeasurementStatus(ev)
	}
}

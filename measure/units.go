package measure

// Unit detection band edges, applied to the unscaled maximum bounding-box
// dimension. A human foot is roughly 50-500mm in its largest dimension, so
// the plausible physical size infers the scan's unit; file metadata is
// assumed unavailable or unreliable.
const (
	meterScaleHighMax = 0.5 // below this, meters with high confidence
	meterScaleMax     = 5   // below this, meters assumed
	centimeterMax     = 50  // below this, centimeters assumed
	millimeterMax     = 500 // up to this, native millimeters
)

// Confidence labels attached to measurements. Informational only; no control
// flow reads them beyond the validate/fallback branch that sets them.
const (
	ConfidenceMeterDetected = "high (meter-scale detected)"
	ConfidenceMeterAssumed  = "medium (meter-scale assumed)"
	ConfidenceCentimeter    = "medium (centimeter-scale assumed)"
	ConfidenceMillimeter    = "high (millimeter-scale detected)"
	ConfidenceAbnormal      = "low (abnormal scale)"
	ConfidenceFallback      = "low (fallback)"
)

// DetectUnit infers the scan's length unit from its maximum bounding-box
// dimension. It always returns a result; the worst case is low confidence.
// The returned unit is always canonical "mm" with the multiplier encoding
// the conversion.
func DetectUnit(maxDimension float64) UnitDetection {
	d := UnitDetection{Unit: "mm"}
	switch {
	case maxDimension < meterScaleHighMax:
		d.Multiplier = 1000
		d.Confidence = ConfidenceMeterDetected
	case maxDimension < meterScaleMax:
		d.Multiplier = 1000
		d.Confidence = ConfidenceMeterAssumed
	case maxDimension < centimeterMax:
		d.Multiplier = 10
		d.Confidence = ConfidenceCentimeter
	case maxDimension <= millimeterMax:
		d.Multiplier = 1
		d.Confidence = ConfidenceMillimeter
	default:
		d.Multiplier = 0.1
		d.Confidence = ConfidenceAbnormal
	}
	return d
}

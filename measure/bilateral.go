package measure

import "math"

// Symmetry severity bands, in overall symmetry percent.
const (
	symmetryExcellentMin = 90
	symmetryGoodMin      = 80
	symmetryModerateMin  = 70
)

// Severity narratives.
const (
	SeverityExcellent   = "excellent symmetry"
	SeverityGood        = "good symmetry"
	SeverityModerate    = "moderate asymmetry"
	SeveritySignificant = "significant asymmetry, consult recommended"
)

// Compare computes the bilateral difference and symmetry record for a
// left/right measurement pair. Pure function; records may come from any mix
// of primary and fallback passes.
func Compare(left, right Measurement) Comparison {
	c := Comparison{
		LengthDiff:        math.Abs(left.Length - right.Length),
		WidthDiff:         math.Abs(left.Width - right.Width),
		HeightDiff:        math.Abs(left.Height - right.Height),
		LengthSymmetryPct: axisSymmetry(left.Length, right.Length),
		WidthSymmetryPct:  axisSymmetry(left.Width, right.Width),
		HeightSymmetryPct: axisSymmetry(left.Height, right.Height),
	}
	c.SymmetryScorePct = math.Round((c.LengthSymmetryPct + c.WidthSymmetryPct + c.HeightSymmetryPct) / 3)
	c.Severity = severityFor(c.SymmetryScorePct)
	return c
}

// axisSymmetry converts one dimension pair to a 0-100 percentage. A zero max
// cannot occur with validator floors in place but is guarded as 0% anyway.
func axisSymmetry(a, b float64) float64 {
	maxV := math.Max(a, b)
	if maxV <= 0 {
		return 0
	}
	return (1 - math.Abs(a-b)/maxV) * 100
}

func severityFor(scorePct float64) string {
	switch {
	case scorePct >= symmetryExcellentMin:
		return SeverityExcellent
	case scorePct >= symmetryGoodMin:
		return SeverityGood
	case scorePct >= symmetryModerateMin:
		return SeverityModerate
	default:
		return SeveritySignificant
	}
}

package measure

// Config holds all tunable parameters for the measurement engine. The band
// fractions are the system's only calibration; the defaults are the values
// the estimators were tuned against and changing them changes measured output.
type Config struct {
	Landmark   LandmarkConfig
	Validation ValidationConfig
	Fallback   FallbackConfig
}

// LandmarkConfig holds the percentile and band-fraction parameters for the
// three landmark estimators. All fractions are of the relevant axis extent.
type LandmarkConfig struct {
	LengthSoleFraction float64 // Vertical cutoff for sole vertices when measuring length
	WidthSoleFraction  float64 // Vertical cutoff for sole vertices when measuring width
	BallBandMin        float64 // Start of the metatarsal band along foot length
	BallBandMax        float64 // End of the metatarsal band along foot length
	InstepBandMin      float64 // Start of the instep band along foot length
	InstepBandMax      float64 // End of the instep band along foot length
}

// ValidationConfig holds the plausible-range bounds, in millimeters, that an
// estimated triplet must satisfy to be accepted. Bounds are inclusive.
type ValidationConfig struct {
	MinLengthMm float64
	MaxLengthMm float64
	MinWidthMm  float64
	MaxWidthMm  float64
	MinHeightMm float64
	MaxHeightMm float64
}

// FallbackConfig holds the floors, in millimeters, applied to bounding-box
// fallback measurements so downstream classification never sees a degenerate
// dimension.
type FallbackConfig struct {
	MinLengthMm float64
	MinWidthMm  float64
	MinHeightMm float64
}

// DefaultConfig returns a Config with the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		Landmark: LandmarkConfig{
			LengthSoleFraction: 0.15,
			WidthSoleFraction:  0.20,
			BallBandMin:        0.60,
			BallBandMax:        0.75,
			InstepBandMin:      0.30,
			InstepBandMax:      0.70,
		},
		Validation: ValidationConfig{
			MinLengthMm: 50,
			MaxLengthMm: 500,
			MinWidthMm:  20,
			MaxWidthMm:  200,
			MinHeightMm: 10,
			MaxHeightMm: 150,
		},
		Fallback: FallbackConfig{
			MinLengthMm: 50,
			MinWidthMm:  30,
			MinHeightMm: 20,
		},
	}
}

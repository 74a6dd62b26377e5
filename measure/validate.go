package measure

// ValidateDimensions range-checks a millimeter triplet against plausible
// human-foot bounds. All three must pass for the triplet to be accepted;
// the engine never partially accepts, so one out-of-range dimension rejects
// the whole measurement.
func ValidateDimensions(lengthMm, widthMm, heightMm float64, cfg ValidationConfig) bool {
	if lengthMm < cfg.MinLengthMm || lengthMm > cfg.MaxLengthMm {
		return false
	}
	if widthMm < cfg.MinWidthMm || widthMm > cfg.MaxWidthMm {
		return false
	}
	if heightMm < cfg.MinHeightMm || heightMm > cfg.MaxHeightMm {
		return false
	}
	return true
}

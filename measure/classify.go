package measure

// Shape classification cutoffs. Strict comparisons: a ratio landing exactly
// on a cutoff classifies as normal.
const (
	longFootRatio = 2.6  // length/width above this is a long foot
	wideFootRatio = 2.2  // length/width below this is a wide foot
	highArchRatio = 0.25 // height/length above this is a high arch
	lowArchRatio  = 0.18 // height/length below this is a low arch
)

// Foot type labels.
const (
	FootTypeLong    = "Long Foot Type"
	FootTypeWide    = "Wide Foot Type"
	FootTypeNormal  = "Normal Foot Type"
	FootTypePending = "Analysis Pending"
)

// Arch type labels.
const (
	ArchTypeHigh    = "High Arch"
	ArchTypeLow     = "Low Arch / Flat Foot"
	ArchTypeNormal  = "Normal Arch"
	ArchTypePending = "Analysis Pending"
)

// Ratios derives the shape ratios from a millimeter triplet. Zero or negative
// inputs yield zero ratios.
func Ratios(lengthMm, widthMm, heightMm float64) RatioSet {
	var r RatioSet
	if lengthMm > 0 && widthMm > 0 {
		r.LengthToWidth = lengthMm / widthMm
	}
	if lengthMm > 0 && heightMm > 0 {
		r.HeightToLengthPct = heightMm / lengthMm * 100
	}
	return r
}

// Classify maps a millimeter triplet to foot-type and arch-type labels with
// descriptive text. Any non-positive input yields the "Analysis Pending"
// sentinel rather than an error, so report generation can always render
// something. Also usable standalone on reconstructed data, independent of the
// engine.
func Classify(lengthMm, widthMm, heightMm float64) Classification {
	if lengthMm <= 0 || widthMm <= 0 || heightMm <= 0 {
		return Classification{
			FootType:    FootTypePending,
			ArchType:    ArchTypePending,
			Description: "Measurements incomplete; classification pending.",
		}
	}

	lwRatio := lengthMm / widthMm
	hlRatio := heightMm / lengthMm

	var footType, footDesc string
	switch {
	case lwRatio > longFootRatio:
		footType = FootTypeLong
		footDesc = "The foot is long relative to its width; narrow lasts tend to fit better."
	case lwRatio < wideFootRatio:
		footType = FootTypeWide
		footDesc = "The foot is wide relative to its length; wide or extra-wide lasts are recommended."
	default:
		footType = FootTypeNormal
		footDesc = "Length-to-width proportions fall in the typical range; standard lasts should fit."
	}

	var archType, archDesc string
	switch {
	case hlRatio > highArchRatio:
		archType = ArchTypeHigh
		archDesc = "The instep is tall relative to foot length; cushioned support is recommended."
	case hlRatio < lowArchRatio:
		archType = ArchTypeLow
		archDesc = "The instep is low relative to foot length; structured arch support is recommended."
	default:
		archType = ArchTypeNormal
		archDesc = "Instep height falls in the typical range."
	}

	return Classification{
		FootType:    footType,
		ArchType:    archType,
		Description: footDesc + " " + archDesc,
	}
}

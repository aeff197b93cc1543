package cinelog

// Code value range helpers shared by the analytic camera curves. Legal
// (video/SMPTE) range pins black to 16 and white to 235 at 8 bit, scaled up
// for deeper code words; full (data) range spans the whole code space.

func peak_cv(bitDepth int) float64 {
	return float64(int(1)<<bitDepth - 1)
}

// CVRange returns the black and white code values for the given bit depth.
// With isInt false the values are normalized by the full-range peak.
func CVRange(bitDepth int, isLegal, isInt bool) (low, high float64) {
	if isLegal {
		scale := float64(int(1) << (bitDepth - 8))
		low, high = 16*scale, 235*scale
	} else {
		low, high = 0, peak_cv(bitDepth)
	}
	if !isInt {
		peak := peak_cv(bitDepth)
		low, high = low/peak, high/peak
	}
	return low, high
}

// CVToIRE converts a code value to IRE units (black 0, white 100).
func CVToIRE(cv float64, bitDepth int, isLegal bool) float64 {
	b, w := CVRange(bitDepth, isLegal, true)
	return (cv - b) / (w - b) * 100
}

// IREToCV converts IRE units back to a code value.
func IREToCV(ire float64, bitDepth int, isLegal bool) float64 {
	b, w := CVRange(bitDepth, isLegal, true)
	return (w-b)*ire/100 + b
}

// FullToLegal compresses a normalized full-range value into the legal
// range for the given bit depth.
func FullToLegal(x float64, bitDepth int) float64 {
	b, w := CVRange(bitDepth, true, false)
	return (w-b)*x + b
}

// LegalToFull expands a normalized legal-range value back to full range.
func LegalToFull(y float64, bitDepth int) float64 {
	b, w := CVRange(bitDepth, true, false)
	return (y - b) / (w - b)
}

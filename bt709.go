package cinelog

import "math"

// OETFBT709 is the Recommendation ITU-R BT.709-6 opto-electronic transfer
// function, mapping luminance to an electrical signal.
func OETFBT709(l float64) float64 {
	if l < 0.018 {
		return l * 4.5
	}
	return 1.099*math.Pow(l, 0.45) - 0.099
}

// OETFInverseBT709 maps a BT.709 electrical signal back to luminance.
func OETFInverseBT709(v float64) float64 {
	if v < OETFBT709(0.018) {
		return v / 4.5
	}
	return math.Pow((v+0.099)/1.099, 1/0.45)
}

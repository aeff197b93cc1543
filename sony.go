package cinelog

import "math"

// Sony S-Log curve constants, from the S-Log2 technical paper and the
// S-Gamut3/S-Log3 technical summary.
const (
	slog_a = 0.432699
	slog_b = 0.037584
	slog_c = 0.616596
	slog_d = 0.03
	// Code value produced by the linear toe at zero input.
	slog_toe_offset = 0.030001222851889303
)

// LogEncodingSLog is the Sony S-Log opto-electronic transfer function.
// x is scene linear light, treated as a reflection value when inReflection
// is set. The returned code value is normalized by the full-range peak of
// bitDepth; outLegal selects legal-range scaling.
func LogEncodingSLog(x float64, bitDepth int, outLegal, inReflection bool) float64 {
	if inReflection {
		x = x / 0.9
	}
	var y float64
	if x >= 0 {
		y = slog_a*math.Log10(x+slog_b) + slog_c + slog_d
	} else {
		y = x*5 + slog_toe_offset
	}
	return IREToCV(y*100, bitDepth, outLegal) / peak_cv(bitDepth)
}

// LogDecodingSLog is the inverse of LogEncodingSLog.
func LogDecodingSLog(y float64, bitDepth int, inLegal, outReflection bool) float64 {
	x := CVToIRE(y*peak_cv(bitDepth), bitDepth, inLegal) / 100
	if y >= LogEncodingSLog(0, bitDepth, inLegal, true) {
		x = math.Pow(10, (x-slog_c-slog_d)/slog_a) - slog_b
	} else {
		x = (x - slog_toe_offset) / 5
	}
	if outReflection {
		x = x * 0.9
	}
	return x
}

// LogEncodingSLog2 is the Sony S-Log2 opto-electronic transfer function,
// defined as S-Log applied to input scaled by 155/219.
func LogEncodingSLog2(x float64, bitDepth int, outLegal, inReflection bool) float64 {
	return LogEncodingSLog(x*155/219, bitDepth, outLegal, inReflection)
}

// LogDecodingSLog2 is the inverse of LogEncodingSLog2.
func LogDecodingSLog2(y float64, bitDepth int, inLegal, outReflection bool) float64 {
	return 219 * LogDecodingSLog(y, bitDepth, inLegal, outReflection) / 155
}

const slog3_linear_knee = 171.2102946929

// LogEncodingSLog3 is the Sony S-Log3 opto-electronic transfer function.
func LogEncodingSLog3(x float64) float64 {
	if x >= 0.01125000 {
		return (420 + math.Log10((x+0.01)/(0.18+0.01))*261.5) / 1023
	}
	return (x*(slog3_linear_knee-95)/0.01125000 + 95) / 1023
}

// LogDecodingSLog3 is the inverse of LogEncodingSLog3.
func LogDecodingSLog3(y float64) float64 {
	if y >= slog3_linear_knee/1023 {
		return math.Pow(10, (y*1023-420)/261.5)*(0.18+0.01) - 0.01
	}
	return (y*1023 - 95) * 0.01125000 / (slog3_linear_knee - 95)
}

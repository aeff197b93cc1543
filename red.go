package cinelog

import "math"

// RED camera log curves. REDLog and REDLogFilm follow the Cineon form with
// a black offset folded into the logarithm; the Log3G10 generations and
// Log3G12 are wide-range curves that hit one third at 18% grey.

var (
	redlog_black_offset     = math.Pow(10, (0-1023)/511.0)
	redlogfilm_black_offset = math.Pow(10, (95-685)/300.0)
)

// LogEncodingREDLog is the REDLog opto-electronic transfer function.
func LogEncodingREDLog(x float64) float64 {
	bo := redlog_black_offset
	return (1023 + 511*math.Log10(x*(1-bo)+bo)) / 1023
}

// LogDecodingREDLog is the inverse of LogEncodingREDLog.
func LogDecodingREDLog(y float64) float64 {
	bo := redlog_black_offset
	return (math.Pow(10, (1023*y-1023)/511) - bo) / (1 - bo)
}

// LogEncodingREDLogFilm is the REDLogFilm opto-electronic transfer
// function, the Cineon curve with its 95/685 code anchors.
func LogEncodingREDLogFilm(x float64) float64 {
	bo := redlogfilm_black_offset
	return (685 + 300*math.Log10(x*(1-bo)+bo)) / 1023
}

// LogDecodingREDLogFilm is the inverse of LogEncodingREDLogFilm.
func LogDecodingREDLogFilm(y float64) float64 {
	bo := redlogfilm_black_offset
	return (math.Pow(10, (1023*y-685)/300) - bo) / (1 - bo)
}

// Log3G10 generation constants. The first generation has no input offset;
// the second shifts input by 0.01 so that zero maps to a positive code; the
// current curve additionally goes linear below -0.01.
const (
	log3g10_v1_gain  = 0.222497
	log3g10_v1_scale = 169.379333
	log3g10_gain     = 0.224282
	log3g10_scale    = 155.975327
	log3g10_offset   = 0.01
	log3g10_slope    = 15.1927
)

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	// preserves signed zero and NaN
	return x
}

// LogEncodingLog3G10V1 is the first generation RED Log3G10
// opto-electronic transfer function.
func LogEncodingLog3G10V1(x float64) float64 {
	return sign(x) * log3g10_v1_gain * math.Log10(math.Abs(x)*log3g10_v1_scale+1)
}

// LogDecodingLog3G10V1 is the inverse of LogEncodingLog3G10V1.
func LogDecodingLog3G10V1(y float64) float64 {
	return sign(y) * (math.Pow(10, math.Abs(y)/log3g10_v1_gain) - 1) / log3g10_v1_scale
}

// LogEncodingLog3G10V2 is the second generation RED Log3G10
// opto-electronic transfer function.
func LogEncodingLog3G10V2(x float64) float64 {
	x += log3g10_offset
	return sign(x) * log3g10_gain * math.Log10(math.Abs(x)*log3g10_scale+1)
}

// LogDecodingLog3G10V2 is the inverse of LogEncodingLog3G10V2.
func LogDecodingLog3G10V2(y float64) float64 {
	return sign(y)*(math.Pow(10, math.Abs(y)/log3g10_gain)-1)/log3g10_scale - log3g10_offset
}

// LogEncodingLog3G10 is the current RED Log3G10 opto-electronic transfer
// function: the second generation curve with a linear segment below -0.01.
func LogEncodingLog3G10(x float64) float64 {
	if x < -log3g10_offset {
		return (x + log3g10_offset) * log3g10_slope
	}
	return log3g10_gain * math.Log10((x+log3g10_offset)*log3g10_scale+1)
}

// LogDecodingLog3G10 is the inverse of LogEncodingLog3G10.
func LogDecodingLog3G10(y float64) float64 {
	if y < 0 {
		return y/log3g10_slope - log3g10_offset
	}
	return (math.Pow(10, y/log3g10_gain)-1)/log3g10_scale - log3g10_offset
}

const (
	log3g12_gain  = 0.184904
	log3g12_scale = 347.189667
)

// LogEncodingLog3G12 is the RED Log3G12 opto-electronic transfer function.
func LogEncodingLog3G12(x float64) float64 {
	return sign(x) * log3g12_gain * math.Log10(math.Abs(x)*log3g12_scale+1)
}

// LogDecodingLog3G12 is the inverse of LogEncodingLog3G12.
func LogDecodingLog3G12(y float64) float64 {
	return sign(y) * (math.Pow(10, math.Abs(y)/log3g12_gain) - 1) / log3g12_scale
}

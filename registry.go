package cinelog

import (
	"slices"
)

// CurveFuncs adapts a pair of scalar transfer functions to the Curve
// interface.
type CurveFuncs struct {
	EncodeFunc func(float64) float64
	DecodeFunc func(float64) float64
}

var _ Curve = CurveFuncs{}

func (c CurveFuncs) Encode(x float64) float64 { return c.EncodeFunc(x) }
func (c CurveFuncs) Decode(y float64) float64 { return c.DecodeFunc(y) }

// Analytic curves registered with their conventional defaults: S-Log and
// S-Log2 use 10 bit, full range, reflection input.
var named_curves = map[string]Curve{
	"BMDFilm":           BMDFilm,
	"BMD4KFilm":         BMD4KFilm,
	"BMD46KFilm":        BMD46KFilm,
	"BMDPocket4KFilmV4": BMDPocket4KFilmV4,
	"BMDPocket6KFilmV4": BMDPocket6KFilmV4,
	"SLog": CurveFuncs{
		EncodeFunc: func(x float64) float64 { return LogEncodingSLog(x, 10, false, true) },
		DecodeFunc: func(y float64) float64 { return LogDecodingSLog(y, 10, false, true) },
	},
	"SLog2": CurveFuncs{
		EncodeFunc: func(x float64) float64 { return LogEncodingSLog2(x, 10, false, true) },
		DecodeFunc: func(y float64) float64 { return LogDecodingSLog2(y, 10, false, true) },
	},
	"SLog3":      CurveFuncs{EncodeFunc: LogEncodingSLog3, DecodeFunc: LogDecodingSLog3},
	"BT709":      CurveFuncs{EncodeFunc: OETFBT709, DecodeFunc: OETFInverseBT709},
	"REDLog":     CurveFuncs{EncodeFunc: LogEncodingREDLog, DecodeFunc: LogDecodingREDLog},
	"REDLogFilm": CurveFuncs{EncodeFunc: LogEncodingREDLogFilm, DecodeFunc: LogDecodingREDLogFilm},
	"Log3G10":    CurveFuncs{EncodeFunc: LogEncodingLog3G10, DecodeFunc: LogDecodingLog3G10},
	"Log3G12":    CurveFuncs{EncodeFunc: LogEncodingLog3G12, DecodeFunc: LogDecodingLog3G12},
}

// CurveByName looks up a curve registered under its conventional name, for
// example "BMDFilm" or "SLog3".
func CurveByName(name string) (Curve, bool) {
	c, ok := named_curves[name]
	return c, ok
}

// CurveNames returns the registered curve names, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(named_curves))
	for name := range named_curves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

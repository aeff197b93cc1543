package cinelog

// Blackmagic Design film log curves, tabulated at eleven evenly spaced code
// values per the DaVinci Resolve CIE chromaticity plot data (Blackmagic
// Design, 2020).
//
// TODO: replace these tables with the full-resolution vendor data once
// Blackmagic publishes it; the eleven-point sampling below is what the
// plot data provides.
var (
	BMDFilm = must_table_curve(
		0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)
	BMD4KFilm = must_table_curve(
		0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)
	BMD46KFilm = must_table_curve(
		0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)
	BMDPocket4KFilmV4 = must_table_curve(
		0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)
	BMDPocket6KFilmV4 = must_table_curve(
		0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)
)

// LogEncodingBMDFilm is the Blackmagic Film log encoding curve
// (opto-electronic transfer function): linear light in, code value out.
func LogEncodingBMDFilm(x float64) float64 { return BMDFilm.Encode(x) }

// LogDecodingBMDFilm is the Blackmagic Film log decoding curve
// (electro-optical transfer function): code value in, linear light out.
func LogDecodingBMDFilm(y float64) float64 { return BMDFilm.Decode(y) }

// LogEncodingBMD4KFilm is the Blackmagic 4K Film log encoding curve.
func LogEncodingBMD4KFilm(x float64) float64 { return BMD4KFilm.Encode(x) }

// LogDecodingBMD4KFilm is the Blackmagic 4K Film log decoding curve.
func LogDecodingBMD4KFilm(y float64) float64 { return BMD4KFilm.Decode(y) }

// LogEncodingBMD46KFilm is the Blackmagic 4.6K Film log encoding curve.
func LogEncodingBMD46KFilm(x float64) float64 { return BMD46KFilm.Encode(x) }

// LogDecodingBMD46KFilm is the Blackmagic 4.6K Film log decoding curve.
func LogDecodingBMD46KFilm(y float64) float64 { return BMD46KFilm.Decode(y) }

// LogEncodingBMDPocket4KFilmV4 is the Blackmagic Pocket 4K Film V4 log
// encoding curve.
func LogEncodingBMDPocket4KFilmV4(x float64) float64 { return BMDPocket4KFilmV4.Encode(x) }

// LogDecodingBMDPocket4KFilmV4 is the Blackmagic Pocket 4K Film V4 log
// decoding curve.
func LogDecodingBMDPocket4KFilmV4(y float64) float64 { return BMDPocket4KFilmV4.Decode(y) }

// LogEncodingBMDPocket6KFilmV4 is the Blackmagic Pocket 6K Film V4 log
// encoding curve.
func LogEncodingBMDPocket6KFilmV4(x float64) float64 { return BMDPocket6KFilmV4.Encode(x) }

// LogDecodingBMDPocket6KFilmV4 is the Blackmagic Pocket 6K Film V4 log
// decoding curve.
func LogDecodingBMDPocket6KFilmV4(y float64) float64 { return BMDPocket6KFilmV4.Decode(y) }

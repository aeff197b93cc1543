package cinelog

import (
	"fmt"
	"image"
	"math"

	"github.com/kovidgoyal/go-parallel"
)

// Direction selects which half of a Curve ApplyToImage uses.
type Direction int

const (
	// EncodeDirection treats pixel values as linear light and writes code values.
	EncodeDirection Direction = iota
	// DecodeDirection treats pixel values as code values and writes linear light.
	DecodeDirection
)

func (d Direction) String() string {
	if d == EncodeDirection {
		return "encode"
	}
	return "decode"
}

func scalar_func(c Curve, d Direction) func(float64) float64 {
	if d == EncodeDirection {
		return c.Encode
	}
	return c.Decode
}

func round16(v float64) uint16 {
	return uint16(math.Round(clamp01(v) * 0xffff))
}

// 8-bit images go through a precomputed table, one curve evaluation per
// possible code value instead of one per pixel.
func build_lut8(f func(float64) float64) (t [256]uint8) {
	for i := range t {
		t[i] = uint8(math.Round(clamp01(f(float64(i)/0xff)) * 0xff))
	}
	return t
}

// ApplyToImage applies the curve to the color channels of img in place,
// normalizing code values to [0, 1] and back. Alpha is left untouched.
// Supported types are *image.NRGBA, *image.NRGBA64, *image.Gray and
// *image.Gray16; anything else is an error. Rows are processed in
// parallel, which does not change the result since every pixel is
// independent.
func ApplyToImage(img image.Image, c Curve, d Direction) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}
	f := scalar_func(c, d)
	var w func(start, limit int)
	switch img := img.(type) {
	case *image.NRGBA:
		lut := build_lut8(f)
		w = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[4*(width-1)]
				for range width {
					s := row[0:4:4]
					s[0], s[1], s[2] = lut[s[0]], lut[s[1]], lut[s[2]]
					row = row[4:]
				}
			}
		}
	case *image.Gray:
		lut := build_lut8(f)
		w = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[width-1]
				for x := range width {
					row[x] = lut[row[x]]
				}
			}
		}
	case *image.NRGBA64:
		w = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[8*(width-1)]
				for range width {
					s := row[0:8:8]
					for i := 0; i < 6; i += 2 {
						v := round16(f(float64(uint16(s[i])<<8|uint16(s[i+1])) / 0xffff))
						s[i], s[i+1] = uint8(v>>8), uint8(v)
					}
					row = row[8:]
				}
			}
		}
	case *image.Gray16:
		w = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
				_ = row[2*(width-1)]
				for range width {
					s := row[0:2:2]
					v := round16(f(float64(uint16(s[0])<<8|uint16(s[1])) / 0xffff))
					s[0], s[1] = uint8(v>>8), uint8(v)
					row = row[2:]
				}
			}
		}
	default:
		return fmt.Errorf("cinelog: unsupported image type %T", img)
	}
	return parallel.Run_in_parallel_over_range(0, w, 0, height)
}

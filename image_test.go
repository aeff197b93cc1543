package cinelog

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToImageNRGBA(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			o := img.PixOffset(x, y)
			img.Pix[o] = uint8(16*y + x)
			img.Pix[o+1] = uint8(255 - 16*y - x)
			img.Pix[o+2] = 0x80
			img.Pix[o+3] = 0xff
		}
	}
	require.NoError(t, ApplyToImage(img, c, EncodeDirection))
	for y := range 16 {
		for x := range 16 {
			o := img.PixOffset(x, y)
			want := func(v uint8) uint8 {
				return uint8(math.Round(clamp01(c.Encode(float64(v)/0xff)) * 0xff))
			}
			assert.Equal(t, want(uint8(16*y+x)), img.Pix[o])
			assert.Equal(t, want(uint8(255-16*y-x)), img.Pix[o+1])
			assert.Equal(t, want(0x80), img.Pix[o+2])
			assert.Equal(t, uint8(0xff), img.Pix[o+3], "alpha must not change")
		}
	}
}

func TestApplyToImageGray16(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	img := image.NewGray16(image.Rect(0, 0, 64, 4))
	for y := range 4 {
		for x := range 64 {
			v := uint16((y*64 + x) * 257)
			o := img.PixOffset(x, y)
			img.Pix[o], img.Pix[o+1] = uint8(v>>8), uint8(v)
		}
	}
	require.NoError(t, ApplyToImage(img, c, DecodeDirection))
	for y := range 4 {
		for x := range 64 {
			v := uint16((y*64 + x) * 257)
			want := round16(c.Decode(float64(v) / 0xffff))
			o := img.PixOffset(x, y)
			got := uint16(img.Pix[o])<<8 | uint16(img.Pix[o+1])
			assert.Equal(t, want, got, "pixel %d,%d", x, y)
		}
	}
}

func TestApplyToImageNonZeroOrigin(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	img := image.NewGray(image.Rect(3, 5, 11, 9))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	want := append([]uint8(nil), img.Pix...)
	lut := build_lut8(c.Encode)
	for i, v := range want {
		want[i] = lut[v]
	}
	require.NoError(t, ApplyToImage(img, c, EncodeDirection))
	assert.Equal(t, want, img.Pix)
}

func TestApplyToImageUnsupported(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	err = ApplyToImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), c, EncodeDirection)
	assert.ErrorContains(t, err, "unsupported image type")
}

func TestApplyToImageEmpty(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	assert.NoError(t, ApplyToImage(image.NewNRGBA(image.Rectangle{}), c, EncodeDirection))
}

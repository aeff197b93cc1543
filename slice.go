package cinelog

import (
	"github.com/kovidgoyal/go-parallel"
)

// Below this many samples the goroutine fan-out costs more than it saves.
const parallel_threshold = 4096

// EncodeSlice applies c.Encode to every element of src, writing into dst.
// dst may alias src or be nil, in which case a new slice is allocated. The
// result is defined as the elementwise application of the scalar form;
// large inputs are chunked across CPUs, which does not change the result.
func EncodeSlice(c Curve, dst, src []float64) []float64 {
	return apply_slice(c.Encode, dst, src)
}

// DecodeSlice is the elementwise form of c.Decode, with the same dst
// conventions as EncodeSlice.
func DecodeSlice(c Curve, dst, src []float64) []float64 {
	return apply_slice(c.Decode, dst, src)
}

func apply_slice(f func(float64) float64, dst, src []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	w := func(start, limit int) {
		for i := start; i < limit; i++ {
			dst[i] = f(src[i])
		}
	}
	if len(src) < parallel_threshold {
		w(0, len(src))
		return dst
	}
	if err := parallel.Run_in_parallel_over_range(0, w, 0, len(src)); err != nil {
		w(0, len(src))
	}
	return dst
}

package cinelog

import (
	"fmt"
	"math"
)

// ErrInvalidTable is returned when a curve table has fewer than two points,
// which leaves the interpolation undefined.
var ErrInvalidTable = fmt.Errorf("cinelog: curve table needs at least two points")

// Curve is a monotonic opto-electronic transfer function together with its
// inverse. Encode maps linear light to a code value, Decode maps a code
// value back to linear light.
type Curve interface {
	Encode(x float64) float64
	Decode(y float64) float64
}

// TableCurve is a piecewise-linear curve defined by n >= 2 samples of the
// decoding function at the evenly spaced code values i/(n-1). The samples
// must be monotonically non-decreasing for Encode to be well defined; this
// is a caller contract and is not validated.
type TableCurve struct {
	points  []float64
	max_idx float64
}

var _ Curve = (*TableCurve)(nil)

// NewTableCurve copies points into a new curve. It fails with
// ErrInvalidTable when fewer than two points are given.
func NewTableCurve(points []float64) (*TableCurve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTable, len(points))
	}
	c := &TableCurve{points: append([]float64(nil), points...)}
	c.max_idx = float64(len(c.points) - 1)
	return c, nil
}

func must_table_curve(points ...float64) *TableCurve {
	c, err := NewTableCurve(points)
	if err != nil {
		panic(err)
	}
	return c
}

// Points returns a copy of the curve table.
func (c *TableCurve) Points() []float64 {
	return append([]float64(nil), c.points...)
}

// Decode interpolates the table at code value y. Inputs outside [0, 1]
// clamp to the boundary knots, the convention used throughout this package.
// NaN passes through.
func (c *TableCurve) Decode(y float64) float64 {
	if math.IsNaN(y) {
		return y
	}
	return sampled_value(c.points, c.max_idx, clamp01(y))
}

// Encode inverts the table lookup: it finds the code value whose
// interpolated table entry equals x. Where the table is flat the first
// matching segment wins. Inputs outside the table value range clamp to the
// first or last code value. NaN passes through.
func (c *TableCurve) Encode(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	p := c.points
	if x <= p[0] {
		return 0
	}
	if x >= p[len(p)-1] {
		return 1
	}
	for i := range len(p) - 1 {
		y0, y1 := p[i], p[i+1]
		if y0 <= x && x <= y1 {
			if y1 == y0 {
				return float64(i) / c.max_idx
			}
			frac := (x - y0) / (y1 - y0)
			return (float64(i) + frac) / c.max_idx
		}
	}
	// unreachable for non-decreasing tables
	return 1
}

// Interpolate evaluates the piecewise-linear curve defined by table at v.
// With invert false the knots are (i/(n-1), table[i]); with invert true the
// table entries are the abscissae and the evenly spaced grid the ordinates,
// which requires a non-decreasing table. It fails with ErrInvalidTable when
// the table has fewer than two points.
func Interpolate(v float64, table []float64, invert bool) (float64, error) {
	c, err := NewTableCurve(table)
	if err != nil {
		return 0, err
	}
	if invert {
		return c.Encode(v), nil
	}
	return c.Decode(v), nil
}

func clamp01(v float64) float64 {
	return min(1, max(0, v))
}

func sampled_value(samples []float64, max_idx, v float64) float64 {
	idx := v * max_idx
	lof := math.Trunc(idx)
	lo := int(lof)
	if lof == idx {
		return samples[lo]
	}
	p := idx - lof
	vlo, vhi := samples[lo], samples[lo+1]
	return vlo + p*(vhi-vlo)
}

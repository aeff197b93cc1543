// Package lut provides a one dimensional lookup table container and
// readers/writers for the Cinespace .csp and Common LUT Format (CLF)
// interchange formats.
package lut

import (
	"fmt"

	"github.com/mbashton/cinelog"
)

// LUT1D holds size samples of a transfer function over Domain. The samples
// are evenly spaced in the domain; evaluation between samples is
// piecewise-linear, the same rule the cinelog curves use.
type LUT1D struct {
	Name     string
	Domain   [2]float64
	Table    []float64
	Comments []string
}

// UnitDomain is the default [0, 1] LUT domain.
var UnitDomain = [2]float64{0, 1}

// New builds a LUT1D over the unit domain. Fails with
// cinelog.ErrInvalidTable for tables shorter than two entries.
func New(table []float64, name string) (*LUT1D, error) {
	if len(table) < 2 {
		return nil, fmt.Errorf("%w: got %d", cinelog.ErrInvalidTable, len(table))
	}
	return &LUT1D{
		Name:   name,
		Domain: UnitDomain,
		Table:  append([]float64(nil), table...),
	}, nil
}

// LinearTable returns size identity samples spanning domain.
func LinearTable(size int, domain [2]float64) []float64 {
	t := make([]float64, size)
	for i := range t {
		t[i] = domain[0] + float64(i)*(domain[1]-domain[0])/float64(size-1)
	}
	return t
}

// FromCurve samples one half of a curve into a LUT over the unit domain.
func FromCurve(c cinelog.Curve, d cinelog.Direction, size int, name string) (*LUT1D, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", cinelog.ErrInvalidTable, size)
	}
	f := c.Encode
	if d == cinelog.DecodeDirection {
		f = c.Decode
	}
	table := make([]float64, size)
	for i := range table {
		table[i] = f(float64(i) / float64(size-1))
	}
	return &LUT1D{Name: name, Domain: UnitDomain, Table: table}, nil
}

// Size returns the number of table entries.
func (l *LUT1D) Size() int { return len(l.Table) }

// Copy returns a deep copy.
func (l *LUT1D) Copy() *LUT1D {
	return &LUT1D{
		Name:     l.Name,
		Domain:   l.Domain,
		Table:    append([]float64(nil), l.Table...),
		Comments: append([]string(nil), l.Comments...),
	}
}

func (l *LUT1D) validate() error {
	if len(l.Table) < 2 {
		return fmt.Errorf("%w: got %d", cinelog.ErrInvalidTable, len(l.Table))
	}
	if l.Domain[1] == l.Domain[0] {
		return fmt.Errorf("lut: degenerate domain [%v, %v]", l.Domain[0], l.Domain[1])
	}
	return nil
}

// Apply evaluates the LUT at v. Values outside Domain clamp to the
// boundary samples.
func (l *LUT1D) Apply(v float64) (float64, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	u := (v - l.Domain[0]) / (l.Domain[1] - l.Domain[0])
	return cinelog.Interpolate(u, l.Table, false)
}

// ApplyInverse evaluates the inverse of the LUT at v, which requires a
// monotonically non-decreasing table. Flat runs resolve to their first
// segment; out-of-range values clamp to the domain bounds.
func (l *LUT1D) ApplyInverse(v float64) (float64, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	u, err := cinelog.Interpolate(v, l.Table, true)
	if err != nil {
		return 0, err
	}
	return l.Domain[0] + u*(l.Domain[1]-l.Domain[0]), nil
}

// ApplySlice maps Apply over src into dst (allocated when nil).
func (l *LUT1D) ApplySlice(dst, src []float64) ([]float64, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	c, err := cinelog.NewTableCurve(l.Table)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	scale := l.Domain[1] - l.Domain[0]
	for i, v := range src {
		dst[i] = c.Decode((v - l.Domain[0]) / scale)
	}
	return dst, nil
}

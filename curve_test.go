package cinelog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Strictly increasing, deliberately non-uniform.
var test_table = []float64{0, 0.05, 0.12, 0.22, 0.34, 0.47, 0.6, 0.72, 0.83, 0.93, 1}

func TestNewTableCurve(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := NewTableCurve(nil)
		require.ErrorIs(t, err, ErrInvalidTable)
	})
	t.Run("SinglePoint", func(t *testing.T) {
		_, err := NewTableCurve([]float64{0.5})
		require.ErrorIs(t, err, ErrInvalidTable)
	})
	t.Run("TwoPoints", func(t *testing.T) {
		c, err := NewTableCurve([]float64{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0.25, c.Decode(0.25), 1e-12)
		assert.InDelta(t, 0.25, c.Encode(0.25), 1e-12)
	})
	t.Run("CopiesInput", func(t *testing.T) {
		points := []float64{0, 0.5, 1}
		c, err := NewTableCurve(points)
		require.NoError(t, err)
		points[1] = 0.9
		assert.InDelta(t, 0.5, c.Decode(0.5), 1e-12)
	})
}

func TestIdentityRamp(t *testing.T) {
	c := must_table_curve(0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1)
	for _, v := range []float64{0, 0.05, 0.18, 0.5, 0.77, 1} {
		assert.InDelta(t, v, c.Decode(v), 1e-12, "decode %v", v)
		assert.InDelta(t, v, c.Encode(v), 1e-12, "encode %v", v)
	}
}

func TestRoundTrip(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	for i := range 101 {
		x := float64(i) / 100
		y := c.Encode(x)
		assert.InDelta(t, x, c.Decode(y), 1e-9, "x=%v", x)
	}
	for i := range 101 {
		y := float64(i) / 100
		x := c.Decode(y)
		assert.InDelta(t, y, c.Encode(x), 1e-9, "y=%v", y)
	}
}

func TestBoundaries(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	assert.Equal(t, test_table[0], c.Decode(0))
	assert.Equal(t, test_table[len(test_table)-1], c.Decode(1))
	assert.Equal(t, 0.0, c.Encode(test_table[0]))
	assert.Equal(t, 1.0, c.Encode(test_table[len(test_table)-1]))
}

func TestMonotonicityPreservation(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	prev_enc, prev_dec := c.Encode(0), c.Decode(0)
	for i := 1; i <= 200; i++ {
		v := float64(i) / 200
		enc, dec := c.Encode(v), c.Decode(v)
		assert.LessOrEqual(t, prev_enc, enc, "encode at %v", v)
		assert.LessOrEqual(t, prev_dec, dec, "decode at %v", v)
		prev_enc, prev_dec = enc, dec
	}
}

func TestFlatSegmentTieBreak(t *testing.T) {
	c, err := NewTableCurve([]float64{0, 0, 0.2, 0.4, 0.6, 0.8, 0.9, 0.95, 0.97, 0.99, 1})
	require.NoError(t, err)
	// the first matching segment wins, so the flat run at the start of the
	// table maps back to code value zero
	assert.Equal(t, 0.0, c.Encode(0))
	assert.LessOrEqual(t, c.Encode(0), 0.1)
	// values inside the flat run's value gap still invert consistently
	got := c.Encode(0.1)
	assert.InDelta(t, 0.15, got, 1e-12)
}

func TestClampOutOfRange(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	assert.Equal(t, test_table[0], c.Decode(-0.5))
	assert.Equal(t, test_table[len(test_table)-1], c.Decode(1.5))
	assert.Equal(t, 0.0, c.Encode(-1))
	assert.Equal(t, 1.0, c.Encode(2))
}

func TestNaNPassthrough(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(c.Encode(math.NaN())))
	assert.True(t, math.IsNaN(c.Decode(math.NaN())))
}

func TestInterpolate(t *testing.T) {
	t.Run("DegenerateTable", func(t *testing.T) {
		_, err := Interpolate(0.5, nil, false)
		require.ErrorIs(t, err, ErrInvalidTable)
		_, err = Interpolate(0.5, []float64{1}, true)
		require.ErrorIs(t, err, ErrInvalidTable)
	})
	t.Run("Forward", func(t *testing.T) {
		got, err := Interpolate(0.25, []float64{0, 1}, false)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, got, 1e-12)
	})
	t.Run("Invert", func(t *testing.T) {
		got, err := Interpolate(0.085, test_table, true)
		require.NoError(t, err)
		// 0.085 sits halfway between knots 1 and 2
		assert.InDelta(t, 0.15, got, 1e-12)
	})
}

func TestPointsCopy(t *testing.T) {
	c, err := NewTableCurve(test_table)
	require.NoError(t, err)
	p := c.Points()
	p[0] = 42
	assert.Equal(t, test_table[0], c.Decode(0))
}

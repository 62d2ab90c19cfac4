package bs

import (
	"errors"
	"math"
	"testing"

	"github.com/banachtech/vanilla/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallReference(t *testing.T) {
	type testCases struct {
		name string
		p    data.Params
		want float64
		tol  float64
	}

	for _, test := range []testCases{
		{
			name: "T10",
			p:    data.Params{Spot: 100, Strike: 100, Maturity: 10, Rate: 0.05, Vol: 0.2},
			want: 45.19,
			tol:  0.005,
		},
		{
			name: "T1",
			p:    data.Params{Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Vol: 0.2},
			want: 10.4505835722,
			tol:  1e-8,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, err := Call(test.p)
			require.NoError(t, err)
			assert.InDelta(t, test.want, c, test.tol)
		})
	}
}

func TestPutReference(t *testing.T) {
	p, err := Put(data.Params{Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Vol: 0.2})
	require.NoError(t, err)
	assert.InDelta(t, 5.5735260223, p, 1e-8)
}

func TestCallNonNegative(t *testing.T) {
	for _, s := range []float64{1, 50, 100, 150, 1000} {
		for _, k := range []float64{1, 80, 100, 120, 10000} {
			for _, r := range []float64{-0.05, 0, 0.05, 0.3} {
				c, err := Call(data.Params{Spot: s, Strike: k, Maturity: 0.5, Rate: r, Vol: 0.3})
				require.NoError(t, err)
				require.GreaterOrEqual(t, c, 0.0)
			}
		}
	}
}

func TestPutCallParity(t *testing.T) {
	for _, p := range []data.Params{
		{Spot: 100, Strike: 100, Maturity: 10, Rate: 0.05, Vol: 0.2},
		{Spot: 80, Strike: 110, Maturity: 0.25, Rate: -0.01, Vol: 0.5},
		{Spot: 120, Strike: 90, Maturity: 2, Rate: 0.03, Vol: 0.15},
	} {
		c, err := Call(p)
		require.NoError(t, err)
		put, err := Put(p)
		require.NoError(t, err)
		assert.InDelta(t, p.Spot-p.Strike*math.Exp(-p.Rate*p.Maturity), c-put, 1e-9)
	}
}

func TestCallLimits(t *testing.T) {
	// Deep in the money: the call is worth the asset.
	c, err := Call(data.Params{Spot: 100, Strike: 1e-8, Maturity: 1, Rate: 0.05, Vol: 0.2})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, c, 1e-6)

	// Near expiry the call converges to intrinsic value.
	for _, s := range []float64{90, 100, 110} {
		c, err := Call(data.Params{Spot: s, Strike: 100, Maturity: 1e-8, Rate: 0.05, Vol: 0.2})
		require.NoError(t, err)
		assert.InDelta(t, math.Max(s-100, 0), c, 1e-3)
	}
}

func TestVanishingVolTime(t *testing.T) {
	// σ√T underflows to zero: prices fall back to discounted intrinsic value.
	for _, tc := range []struct {
		spot, call, put float64
	}{
		{spot: 100, call: 0, put: 0},
		{spot: 110, call: 10, put: 0},
		{spot: 90, call: 0, put: 10},
	} {
		p := data.Params{Spot: tc.spot, Strike: 100, Maturity: 1e-300, Rate: 0, Vol: 1e-200}

		c, err := Call(p)
		require.NoError(t, err)
		require.False(t, math.IsNaN(c))
		assert.InDelta(t, tc.call, c, 1e-12)

		put, err := Put(p)
		require.NoError(t, err)
		require.False(t, math.IsNaN(put))
		assert.InDelta(t, tc.put, put, 1e-12)
	}
}

func TestDomainError(t *testing.T) {
	base := data.Params{Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Vol: 0.2}
	for name, mutate := range map[string]func(p *data.Params){
		"spot":     func(p *data.Params) { p.Spot = 0 },
		"strike":   func(p *data.Params) { p.Strike = -10 },
		"maturity": func(p *data.Params) { p.Maturity = 0 },
		"vol":      func(p *data.Params) { p.Vol = -0.2 },
	} {
		t.Run(name, func(t *testing.T) {
			p := base
			mutate(&p)

			c, err := Call(p)
			require.True(t, math.IsNaN(c))
			var de *data.DomainError
			require.True(t, errors.As(err, &de))
			require.Equal(t, name, de.Field)

			_, err = Put(p)
			require.Error(t, err)
		})
	}
}

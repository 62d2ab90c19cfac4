package mc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGBMPath(t *testing.T) {
	m := GBM{Rate: 0.05, Sigma: 0.2}
	dt := []float64{0.5, 0.25, 0.25}
	z := []float64{0.3, -1.1, 0.7}

	path := m.Path(100, dt, z)
	require.Len(t, path, 4)
	require.Equal(t, 100.0, path[0])

	// The product of increments equals a single step with the aggregated variate.
	zT := 0.0
	for i := range z {
		zT += math.Sqrt(dt[i]) * z[i]
	}
	assert.InDelta(t, m.Terminal(100, 1.0, zT), path[3], 1e-10)
}

func TestGBMTerminal(t *testing.T) {
	m := GBM{Rate: 0.05, Sigma: 0.2}

	// z = 0 leaves only the drift (r - σ²/2)T.
	assert.InDelta(t, 100*math.Exp(0.03*10), m.Terminal(100, 10, 0), 1e-10)
	assert.InDelta(t, m.Terminal(100, 2, 0.4), m.Path(100, []float64{2}, []float64{0.4})[1], 1e-12)
	assert.Equal(t, "GBM(r=0.05, sigma=0.2)", m.String())
}

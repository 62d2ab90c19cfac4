package mc

import (
	"fmt"
	"math"
)

// GBM is geometric Brownian motion under the risk-neutral measure:
// dS = r·S·dt + σ·S·dW.
type GBM struct {
	Rate, Sigma float64
}

// Simulate a GBM path for a given vector of timesteps and normal variates.
// Each step uses the exact log-normal increment, so the terminal distribution
// does not depend on the number of steps.
func (m GBM) Path(s0 float64, dt, z []float64) []float64 {
	r := make([]float64, len(dt)+1)
	r[0] = s0
	a := m.Rate - 0.5*m.Sigma*m.Sigma
	for i := range dt {
		r[i+1] = r[i] * math.Exp(a*dt[i]+m.Sigma*math.Sqrt(dt[i])*z[i])
	}
	return r
}

// Terminal computes S·exp[(r − σ²/2)T + σ√T·z].
func (m GBM) Terminal(s0, T, z float64) float64 {
	return s0 * math.Exp((m.Rate-0.5*m.Sigma*m.Sigma)*T+m.Sigma*math.Sqrt(T)*z)
}

// String method to satisfy Stringer interface for printing purposes
func (m GBM) String() string {
	return fmt.Sprintf("GBM(r=%v, sigma=%v)", m.Rate, m.Sigma)
}

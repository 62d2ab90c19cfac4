package payoff

import "math"

// Payoff maps a simulated price path to the amount paid at maturity.
type Payoff interface {
	Payout(path []float64) float64
}

// Call is a European call. Only the last fixing of the path matters.
type Call struct {
	Strike float64
}

func (c Call) Payout(path []float64) float64 {
	return math.Max(path[len(path)-1]-c.Strike, 0)
}

// Put is a European put.
type Put struct {
	Strike float64
}

func (p Put) Payout(path []float64) float64 {
	return math.Max(p.Strike-path[len(path)-1], 0)
}

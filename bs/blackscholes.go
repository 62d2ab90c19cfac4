// Package bs prices European options with the closed-form Black-Scholes formula.
//
// The formulas assume European exercise. Applied to American puts they
// understate the price since early exercise is ignored.
package bs

import (
	"math"

	"github.com/banachtech/vanilla/data"
	"gonum.org/v1/gonum/stat/distuv"
)

// D1D2 returns the two standardised moneyness terms of the formula.
func D1D2(p data.Params) (float64, float64) {
	vt := p.Vol * math.Sqrt(p.Maturity)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Vol*p.Vol)*p.Maturity) / vt
	return d1, d1 - vt
}

// degenerate reports whether σ√T is too small for d1 and d2 to be finite
// numbers. The option is then worth its discounted intrinsic value.
func degenerate(d1 float64) bool {
	return math.IsNaN(d1)
}

// Call returns S·Φ(d1) − K·e^(−rT)·Φ(d2).
func Call(p data.Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return math.NaN(), err
	}
	d1, d2 := D1D2(p)
	if degenerate(d1) {
		return math.Max(p.Spot-p.Strike*p.Discount(), 0), nil
	}
	price := p.Spot*distuv.UnitNormal.CDF(d1) - p.Strike*p.Discount()*distuv.UnitNormal.CDF(d2)
	// Φ(d1) and Φ(d2) can round to the same value deep out of the money.
	return math.Max(price, 0), nil
}

// Put returns K·e^(−rT)·Φ(−d2) − S·Φ(−d1).
func Put(p data.Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return math.NaN(), err
	}
	d1, d2 := D1D2(p)
	if degenerate(d1) {
		return math.Max(p.Strike*p.Discount()-p.Spot, 0), nil
	}
	price := p.Strike*p.Discount()*distuv.UnitNormal.CDF(-d2) - p.Spot*distuv.UnitNormal.CDF(-d1)
	return math.Max(price, 0), nil
}

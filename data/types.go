package data

import (
	"fmt"
	"math"
)

// Params holds the market inputs of a single European option.
type Params struct {
	Spot     float64 `json:"spot" yaml:"spot"`
	Strike   float64 `json:"strike" yaml:"strike"`
	Maturity float64 `json:"maturity" yaml:"maturity"` // years
	Rate     float64 `json:"rate" yaml:"rate"`         // continuously compounded, annual
	Vol      float64 `json:"vol" yaml:"vol"`           // annual
}

// SimConfig controls a Monte Carlo run.
type SimConfig struct {
	Samples int    `json:"samples" yaml:"samples"`
	Seed    uint64 `json:"seed" yaml:"seed"`
	Steps   int    `json:"steps" yaml:"steps"`
	Workers int    `json:"workers" yaml:"workers"`
}

// DomainError reports an input outside the domain of the pricing formulas.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks S>0, K>0, T>0 and σ>0. The rate may be any finite number.
func (p Params) Validate() error {
	checks := []struct {
		field string
		v     float64
	}{
		{"spot", p.Spot},
		{"strike", p.Strike},
		{"maturity", p.Maturity},
		{"vol", p.Vol},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return &DomainError{Field: c.field, Value: c.v, Reason: "must be finite"}
		}
		if c.v <= 0 {
			return &DomainError{Field: c.field, Value: c.v, Reason: "must be positive"}
		}
	}
	if math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0) {
		return &DomainError{Field: "rate", Value: p.Rate, Reason: "must be finite"}
	}
	return nil
}

func (s SimConfig) Validate() error {
	if s.Samples < 1 {
		return &DomainError{Field: "samples", Value: float64(s.Samples), Reason: "must be at least 1"}
	}
	if s.Steps < 0 {
		return &DomainError{Field: "steps", Value: float64(s.Steps), Reason: "must not be negative"}
	}
	if s.Workers < 0 {
		return &DomainError{Field: "workers", Value: float64(s.Workers), Reason: "must not be negative"}
	}
	return nil
}

// NSteps returns the number of time steps per path, at least 1.
func (s SimConfig) NSteps() int {
	if s.Steps < 1 {
		return 1
	}
	return s.Steps
}

// NWorkers returns the number of generator streams, at least 1 and never more than Samples.
func (s SimConfig) NWorkers() int {
	n := s.Workers
	if n < 1 {
		n = 1
	}
	if s.Samples > 0 && n > s.Samples {
		n = s.Samples
	}
	return n
}

// Discount returns e^(-rT).
func (p Params) Discount() float64 {
	return math.Exp(-p.Rate * p.Maturity)
}

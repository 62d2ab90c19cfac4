package handler

import (
	"log/slog"
	"math"
	"time"

	"github.com/banachtech/vanilla/bs"
	"github.com/banachtech/vanilla/data"
	"github.com/banachtech/vanilla/mc"
	"github.com/google/uuid"
)

// agreementBand is the number of standard errors within which the two
// prices are considered to agree.
const agreementBand = 3.0

// Result pairs the closed-form and Monte Carlo prices of one option.
type Result struct {
	ID         string         `json:"id"`
	Params     data.Params    `json:"params"`
	Simulation data.SimConfig `json:"simulation"`
	ClosedForm float64        `json:"closed_form"`
	MonteCarlo mc.Estimate    `json:"monte_carlo"`
	Diff       float64        `json:"diff"`     // MonteCarlo.Price - ClosedForm
	RelDiff    float64        `json:"rel_diff"` // Diff / ClosedForm, 0 when ClosedForm is 0
	Agree      bool           `json:"agree"`
	Elapsed    time.Duration  `json:"elapsed_ns"`
}

// Price runs both pricers on the same inputs. progress may be nil.
func Price(p data.Params, sim data.SimConfig, progress func(done int)) (*Result, error) {
	start := time.Now()

	cf, err := bs.Call(p)
	if err != nil {
		return nil, err
	}

	pr := mc.Pricer{Progress: progress}
	est, err := pr.Price(p, sim)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ID:         uuid.NewString(),
		Params:     p,
		Simulation: sim,
		ClosedForm: cf,
		MonteCarlo: est,
		Diff:       est.Price - cf,
		Elapsed:    time.Since(start),
	}
	if cf != 0 {
		res.RelDiff = res.Diff / cf
	}
	res.Agree = math.Abs(res.Diff) <= agreementBand*est.StdErr

	slog.Info("priced",
		"id", res.ID,
		"closed_form", res.ClosedForm,
		"monte_carlo", est.Price,
		"std_err", est.StdErr,
		"agree", res.Agree,
		"elapsed", res.Elapsed,
	)
	return res, nil
}

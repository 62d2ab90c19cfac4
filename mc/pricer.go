package mc

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/banachtech/vanilla/data"
	"github.com/banachtech/vanilla/payoff"
	"github.com/banachtech/vanilla/util"
	"gonum.org/v1/gonum/stat"
)

// batchSize is the number of samples a worker prices between progress reports.
const batchSize = 1000

// Estimate is a Monte Carlo price together with its standard error.
type Estimate struct {
	Price   float64 `json:"price"`
	StdErr  float64 `json:"std_err"`
	Samples int     `json:"samples"`
}

// Pricer estimates the discounted expected payoff of a European claim.
// The zero value prices a call struck at Params.Strike under GBM.
type Pricer struct {
	// Model defaults to GBM{Rate: p.Rate, Sigma: p.Vol}.
	Model Model
	// Payoff defaults to payoff.Call{Strike: p.Strike}.
	Payoff payoff.Payoff
	// Progress, if set, is called with the number of samples completed since the
	// previous call. It is only ever called from the goroutine running Price.
	Progress func(done int)
}

// Price estimates the European call price under GBM.
func Price(p data.Params, sim data.SimConfig) (Estimate, error) {
	var pr Pricer
	return pr.Price(p, sim)
}

// Price draws sim.Samples paths and returns e^(-rT) times the mean payoff.
// For a fixed (Seed, Workers) pair the result is reproducible bit for bit.
func (pr *Pricer) Price(p data.Params, sim data.SimConfig) (Estimate, error) {
	if err := p.Validate(); err != nil {
		return Estimate{Price: math.NaN()}, err
	}
	if err := sim.Validate(); err != nil {
		return Estimate{Price: math.NaN()}, err
	}

	m := pr.Model
	if m == nil {
		m = GBM{Rate: p.Rate, Sigma: p.Vol}
	}
	pay := pr.Payoff
	if pay == nil {
		pay = payoff.Call{Strike: p.Strike}
	}

	nsteps := sim.NSteps()
	dt := make([]float64, nsteps)
	for i := range dt {
		dt[i] = p.Maturity / float64(nsteps)
	}

	start := time.Now()
	payoffs := make([]float64, sim.Samples)
	nworkers := sim.NWorkers()
	per := sim.Samples / nworkers
	progress := make(chan int, nworkers)

	// Compute path payouts concurrently, one independent generator per worker
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		lo, hi := w*per, (w+1)*per
		if w == nworkers-1 {
			hi = sim.Samples
		}
		wg.Add(1)
		go func(seed uint64, out []float64) {
			defer wg.Done()
			simulate(m, pay, p.Spot, dt, seed, out, progress)
		}(util.DeriveSeed(sim.Seed, w), payoffs[lo:hi])
	}
	go func() {
		wg.Wait()
		close(progress)
	}()
	for n := range progress {
		if pr.Progress != nil {
			pr.Progress(n)
		}
	}

	mean, sd := stat.MeanStdDev(payoffs, nil)
	disc := p.Discount()
	est := Estimate{Price: disc * mean, Samples: sim.Samples}
	if sim.Samples > 1 {
		est.StdErr = disc * sd / math.Sqrt(float64(sim.Samples))
	}

	slog.Debug("monte carlo done",
		"model", m,
		"samples", sim.Samples,
		"steps", nsteps,
		"workers", nworkers,
		"price", est.Price,
		"std_err", est.StdErr,
		"elapsed", time.Since(start),
	)
	return est, nil
}

// simulate fills out with one payoff per path, drawing every variate from a
// generator seeded with seed. Completed batches are reported on progress.
func simulate(m Model, pay payoff.Payoff, s0 float64, dt []float64, seed uint64, out []float64, progress chan<- int) {
	d := util.StdNormal(seed)
	z := make([]float64, len(dt))
	buf := make([]float64, 2)
	done := 0
	for i := range out {
		for j := range z {
			z[j] = d.Rand()
		}
		var path []float64
		if len(dt) == 1 {
			buf[0], buf[1] = s0, m.Terminal(s0, dt[0], z[0])
			path = buf
		} else {
			path = m.Path(s0, dt, z)
		}
		out[i] = pay.Payout(path)

		done++
		if done == batchSize {
			progress <- done
			done = 0
		}
	}
	if done > 0 {
		progress <- done
	}
}

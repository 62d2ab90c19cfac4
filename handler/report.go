package handler

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
)

// WriteLines prints the closed-form price and the Monte Carlo price, one per line.
func WriteLines(w io.Writer, res *Result) error {
	_, err := fmt.Fprintf(w, "%.6f\n%.6f\n", res.ClosedForm, res.MonteCarlo.Price)
	return err
}

// WriteTable prints both prices side by side with the sampling error.
func WriteTable(w io.Writer, res *Result) {
	p := res.Params
	fmt.Fprintf(w, "European call  S=%g K=%g T=%g r=%g sigma=%g  (samples=%d seed=%d)\n",
		p.Spot, p.Strike, p.Maturity, p.Rate, p.Vol, res.Simulation.Samples, res.Simulation.Seed)

	table := tablewriter.NewWriter(w)
	table.Header("Method", "Price", "Std err", "Diff", "Rel diff")
	table.Append("Black-Scholes", fmt.Sprintf("%.6f", res.ClosedForm), "-", "-", "-")
	table.Append(
		"Monte Carlo",
		fmt.Sprintf("%.6f", res.MonteCarlo.Price),
		fmt.Sprintf("%.6f", res.MonteCarlo.StdErr),
		fmt.Sprintf("%+.6f", res.Diff),
		fmt.Sprintf("%+.4f%%", 100*res.RelDiff),
	)
	table.Render()

	verdict := "outside"
	if res.Agree {
		verdict = "within"
	}
	fmt.Fprintf(w, "  difference is %s %.0f standard errors\n", verdict, agreementBand)
}

// ProgressBar returns a bar of the given length writing to w.
func ProgressBar(w io.Writer, length int) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		length,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// Package report assembles model and scenario output into plain tables and
// serializes them: an xlsx workbook with one sheet per table, or a markdown
// feasibility report. The tables are ordered sequences of named string
// fields so any tabular writer can consume them without further reshaping.
package report

import (
	"fmt"

	"github.com/google/uuid"

	"feasibility_sim/pkg/core/model"
	"feasibility_sim/pkg/core/scenario"
)

// Options bound the derived views. Defaults mirror the reference project's
// slider ranges.
type Options struct {
	PriceSweepLow   float64
	PriceSweepHigh  float64
	PriceSweepStep  float64
	RateSweepLow    float64
	RateSweepHigh   float64
	RateSweepStep   float64
	BreakevenLow    float64
	BreakevenHigh   float64
	BreakevenStep   float64
	SensitivityStep float64 // price step of the grid; rates reuse the rate sweep
}

// DefaultOptions returns the reference slider bounds: selling price
// 3000-5000 step 100, discount rate 8-15% step 1%, breakeven scan
// 1000-5000 step 50.
func DefaultOptions() Options {
	return Options{
		PriceSweepLow:   3000,
		PriceSweepHigh:  5000,
		PriceSweepStep:  100,
		RateSweepLow:    0.08,
		RateSweepHigh:   0.15,
		RateSweepStep:   0.01,
		BreakevenLow:    1000,
		BreakevenHigh:   5000,
		BreakevenStep:   50,
		SensitivityStep: 500,
	}
}

// Report is one full evaluation of a scenario and its derived views,
// constructed fresh per call and discarded after rendering.
type Report struct {
	ID          uuid.UUID
	Site        model.SiteParams
	Assumptions model.Assumptions
	Result      *model.Result
	PriceSweep  []scenario.Row
	RateSweep   []scenario.Row
	Breakeven   *scenario.Breakeven // nil when no price in range breaks even
	Sensitivity scenario.Grid
}

// Build evaluates the current scenario plus every derived view. Only an
// invalid base scenario fails the build; sweep rows and grid cells isolate
// their own failures per the scenario package's contract.
func Build(site model.SiteParams, a model.Assumptions, opts Options) (*Report, error) {
	res, err := model.Simulate(site, a)
	if err != nil {
		return nil, err
	}

	prices, err := scenario.Range(opts.PriceSweepLow, opts.PriceSweepHigh, opts.PriceSweepStep)
	if err != nil {
		return nil, err
	}
	rates, err := scenario.Range(opts.RateSweepLow, opts.RateSweepHigh, opts.RateSweepStep)
	if err != nil {
		return nil, err
	}
	gridPrices, err := scenario.Range(opts.PriceSweepLow, opts.PriceSweepHigh, opts.SensitivityStep)
	if err != nil {
		return nil, err
	}

	priceSweep, err := scenario.Sweep(site, a, scenario.FieldSellingPrice, prices)
	if err != nil {
		return nil, err
	}
	rateSweep, err := scenario.Sweep(site, a, scenario.FieldDiscountRate, rates)
	if err != nil {
		return nil, err
	}
	breakeven, err := scenario.FindBreakeven(site, a, opts.BreakevenLow, opts.BreakevenHigh, opts.BreakevenStep)
	if err != nil {
		return nil, err
	}

	return &Report{
		ID:          uuid.New(),
		Site:        site,
		Assumptions: a,
		Result:      res,
		PriceSweep:  priceSweep,
		RateSweep:   rateSweep,
		Breakeven:   breakeven,
		Sensitivity: scenario.Sensitivity(site, a, gridPrices, rates),
	}, nil
}

// Headline returns the three metrics formatted the way the UI shows them:
// undefined values as "N/A", never as zero.
func (r *Report) Headline() (irr, npv, roic string) {
	return fmtPct(r.Result.IRR),
		fmt.Sprintf("SAR %s", fmtMoney(r.Result.NPV)),
		fmtMultiple(r.Result.ROIC)
}

package model

import "math"

// Simulate runs the cash-flow model for one scenario.
//
// The initial outlay is the equity share of total cost only: the
// debt-financed portion is excluded from the series and no periodic debt
// service (interest or principal) is modeled. This is a deliberate
// simplification of the financing side, not an accident — LoanAmount is
// surfaced on the Result so callers can see what was left out.
//
// Revenue and cost are spread linearly across the periods; the model does
// not support uneven ramp-up.
func Simulate(site SiteParams, a Assumptions) (*Result, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	perYear, err := a.Granularity.PeriodsPerYear()
	if err != nil {
		return nil, err
	}
	periods := a.DurationYears * perYear

	// 1. Areas and totals
	sellableArea := site.SiteArea * site.SellableFraction
	revenue := a.SellingPrice * sellableArea
	landCost := a.LandPrice * site.SiteArea
	developmentCost := site.DevCostPerSqm * site.SiteArea
	totalCost := landCost + developmentCost

	// 2. Financing split
	equity := totalCost * (1 - a.LoanFraction)
	loanAmount := totalCost * a.LoanFraction

	// 3. Linear distribution over the periods
	netPerPeriod := revenue/float64(periods) - totalCost/float64(periods)
	flows := make([]float64, periods+1)
	flows[0] = -equity
	for i := 1; i <= periods; i++ {
		flows[i] = netPerPeriod
	}

	// 4. Metrics
	res := &Result{
		NPV:        NetPresentValue(flows, a.DiscountRate/float64(perYear)),
		CashFlows:  flows,
		Periods:    periods,
		Revenue:    revenue,
		TotalCost:  totalCost,
		Equity:     equity,
		LoanAmount: loanAmount,
	}

	if r, ok := InternalRateOfReturn(flows); ok {
		res.IRR = floatPtr(annualize(r, perYear))
	}
	if totalCost != 0 {
		res.ROIC = floatPtr(revenue / totalCost)
	}
	return res, nil
}

// annualize converts a per-period rate to an annual one by compounding:
// (1+r)^periodsPerYear - 1. The linear ×12 convention is NOT used; sweep
// and breakeven results follow the same compounding convention.
func annualize(rate float64, periodsPerYear int) float64 {
	if periodsPerYear == 1 {
		return rate
	}
	return math.Pow(1+rate, float64(periodsPerYear)) - 1
}

// NetPresentValue discounts the series at the given per-period rate.
// Index 0 is undiscounted; at rate 0 the result is the plain sum.
func NetPresentValue(flows []float64, rate float64) float64 {
	npv := 0.0
	discount := 1.0
	for i, cf := range flows {
		if i > 0 {
			discount *= 1 + rate
		}
		npv += cf / discount
	}
	return npv
}

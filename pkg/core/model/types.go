// Package model implements the cash-flow engine of the feasibility simulator.
// It turns a set of project assumptions plus fixed site parameters into a
// periodic net cash-flow series and the three headline metrics (IRR, NPV,
// ROIC). Everything here is a pure function of its inputs; nothing is cached
// or mutated between calls.
package model

import (
	"errors"
	"fmt"
)

// Granularity controls how the project duration is partitioned into
// cash-flow periods.
type Granularity string

const (
	Annual  Granularity = "annual"
	Monthly Granularity = "monthly"
)

// PeriodsPerYear returns the number of cash-flow periods per project year.
// An empty granularity defaults to annual.
func (g Granularity) PeriodsPerYear() (int, error) {
	switch g {
	case Annual, "":
		return 1, nil
	case Monthly:
		return 12, nil
	default:
		return 0, fmt.Errorf("%w: unknown granularity %q", ErrInvalidAssumption, g)
	}
}

// SiteParams are the fixed characteristics of the development site. They are
// passed explicitly into every model call rather than living as hidden
// package globals, so sweeps and tests can vary them freely.
type SiteParams struct {
	SiteArea         float64 `json:"site_area" yaml:"site_area"`                 // sqm
	SellableFraction float64 `json:"sellable_fraction" yaml:"sellable_fraction"` // portion of area that generates revenue
	DevCostPerSqm    float64 `json:"dev_cost_per_sqm" yaml:"dev_cost_per_sqm"`   // infrastructure + development fee
}

// DefaultSite mirrors the reference project: a 1000 sqm site, 60% sellable,
// SAR 500/sqm development cost.
func DefaultSite() SiteParams {
	return SiteParams{
		SiteArea:         1000,
		SellableFraction: 0.6,
		DevCostPerSqm:    500,
	}
}

// Assumptions are the five user-controlled inputs of a what-if scenario.
type Assumptions struct {
	SellingPrice  float64     `json:"selling_price"`  // currency per sqm of sellable area
	LandPrice     float64     `json:"land_price"`     // currency per sqm of site area
	LoanFraction  float64     `json:"loan_fraction"`  // debt-financed share of total cost, in [0,1]
	DiscountRate  float64     `json:"discount_rate"`  // annual rate, > -1
	DurationYears int         `json:"duration_years"` // > 0
	Granularity   Granularity `json:"granularity,omitempty"`
}

// Result is the full output of one model evaluation. IRR and ROIC are
// pointers: nil means the metric is undefined for this cash-flow shape
// (no sign change, zero cost base). A nil metric is never reported as zero.
type Result struct {
	IRR  *float64 `json:"irr"` // annualized
	NPV  float64  `json:"npv"`
	ROIC *float64 `json:"roic"`

	// CashFlows holds periods+1 entries: index 0 is the (negative) initial
	// equity outlay, indices 1..periods the constant per-period net flow.
	CashFlows []float64 `json:"cash_flows"`
	Periods   int       `json:"periods"`

	Revenue   float64 `json:"revenue"`
	TotalCost float64 `json:"total_cost"`
	Equity    float64 `json:"equity"`
	// LoanAmount is reported for transparency but does not re-enter the
	// series: debt service is not modeled (see Simulate).
	LoanAmount float64 `json:"loan_amount"`
}

// ErrInvalidAssumption marks a validation failure detected before any
// simulation arithmetic runs. Callers can test for it with errors.Is and
// treat it as recoverable input error rather than a fault.
var ErrInvalidAssumption = errors.New("invalid assumption")

// Validate rejects assumption sets the model cannot price.
func (a Assumptions) Validate() error {
	if a.DurationYears <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of years, got %d", ErrInvalidAssumption, a.DurationYears)
	}
	if a.DiscountRate <= -1 {
		return fmt.Errorf("%w: discount rate must be greater than -100%%, got %g", ErrInvalidAssumption, a.DiscountRate)
	}
	if a.LoanFraction < 0 || a.LoanFraction > 1 {
		return fmt.Errorf("%w: loan fraction must be in [0,1], got %g", ErrInvalidAssumption, a.LoanFraction)
	}
	if a.SellingPrice < 0 {
		return fmt.Errorf("%w: selling price must be non-negative, got %g", ErrInvalidAssumption, a.SellingPrice)
	}
	if a.LandPrice < 0 {
		return fmt.Errorf("%w: land price must be non-negative, got %g", ErrInvalidAssumption, a.LandPrice)
	}
	if _, err := a.Granularity.PeriodsPerYear(); err != nil {
		return err
	}
	return nil
}

// Validate rejects site parameter sets that would make area math meaningless.
func (s SiteParams) Validate() error {
	if s.SiteArea <= 0 {
		return fmt.Errorf("%w: site area must be positive, got %g", ErrInvalidAssumption, s.SiteArea)
	}
	if s.SellableFraction < 0 || s.SellableFraction > 1 {
		return fmt.Errorf("%w: sellable fraction must be in [0,1], got %g", ErrInvalidAssumption, s.SellableFraction)
	}
	if s.DevCostPerSqm < 0 {
		return fmt.Errorf("%w: development cost must be non-negative, got %g", ErrInvalidAssumption, s.DevCostPerSqm)
	}
	return nil
}

func floatPtr(f float64) *float64 { return &f }

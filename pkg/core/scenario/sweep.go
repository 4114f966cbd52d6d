// Package scenario runs the cash-flow model repeatedly: one-dimensional
// parameter sweeps, an ascending breakeven scan over selling price, and a
// two-way price x discount-rate sensitivity grid. Each evaluation is an
// independent call into model.Simulate; a failure in one candidate never
// aborts the rest.
package scenario

import (
	"fmt"

	"feasibility_sim/pkg/core/model"
)

// Field names an Assumptions member a sweep may vary.
type Field string

const (
	FieldSellingPrice Field = "selling_price"
	FieldLandPrice    Field = "land_price"
	FieldLoanFraction Field = "loan_fraction"
	FieldDiscountRate Field = "discount_rate"
	FieldDuration     Field = "duration"
)

// Row is one sweep point. All three metrics are pointers: a candidate whose
// simulation fails (or whose IRR/ROIC is undefined) keeps its Value and
// carries nil for the affected metrics instead of a fabricated zero.
type Row struct {
	Value float64  `json:"value"`
	IRR   *float64 `json:"irr"`
	NPV   *float64 `json:"npv"`
	ROIC  *float64 `json:"roic"`
}

// Sweep substitutes each candidate value into base for the given field, runs
// the model, and returns one row per candidate in input order. An unknown
// field is a caller bug and fails the whole sweep; an invalid candidate
// value only blanks its own row.
func Sweep(site model.SiteParams, base model.Assumptions, field Field, values []float64) ([]Row, error) {
	if _, err := apply(base, field, 0); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, evaluate(site, base, field, v))
	}
	return rows, nil
}

func evaluate(site model.SiteParams, base model.Assumptions, field Field, v float64) Row {
	row := Row{Value: v}
	a, err := apply(base, field, v)
	if err != nil {
		return row
	}
	res, err := model.Simulate(site, a)
	if err != nil {
		return row
	}
	npv := res.NPV
	row.IRR = res.IRR
	row.NPV = &npv
	row.ROIC = res.ROIC
	return row
}

// apply returns a copy of base with the varied field replaced. Duration
// values are truncated to whole years; model validation rejects the result
// if that leaves a non-positive duration.
func apply(base model.Assumptions, field Field, v float64) (model.Assumptions, error) {
	switch field {
	case FieldSellingPrice:
		base.SellingPrice = v
	case FieldLandPrice:
		base.LandPrice = v
	case FieldLoanFraction:
		base.LoanFraction = v
	case FieldDiscountRate:
		base.DiscountRate = v
	case FieldDuration:
		base.DurationYears = int(v)
	default:
		return base, fmt.Errorf("%w: unknown sweep field %q", model.ErrInvalidAssumption, field)
	}
	return base, nil
}

// Range expands [low, high] inclusive with the given positive step into a
// candidate list, the shape both breakeven and the default sweeps use.
func Range(low, high, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: sweep step must be positive, got %g", model.ErrInvalidAssumption, step)
	}
	if high < low {
		return nil, fmt.Errorf("%w: sweep range is empty (low %g > high %g)", model.ErrInvalidAssumption, low, high)
	}
	var values []float64
	// The epsilon keeps the inclusive upper bound from falling to float
	// accumulation error.
	for v := low; v <= high+step*1e-9; v += step {
		values = append(values, v)
	}
	return values, nil
}

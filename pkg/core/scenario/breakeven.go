package scenario

import "feasibility_sim/pkg/core/model"

// Breakeven is the lowest scanned selling price whose NPV is non-negative.
type Breakeven struct {
	Price float64  `json:"price"`
	IRR   *float64 `json:"irr"`
	NPV   float64  `json:"npv"`
}

// FindBreakeven scans selling price from low to high inclusive in ascending
// step increments and returns the first candidate with NPV >= 0, or nil if
// the whole range stays negative. This is a linear scan, not a root finder:
// the answer is the lowest step-aligned price at or above the true breakeven
// point, never an interpolated value. Candidates whose simulation fails are
// skipped, not treated as found.
func FindBreakeven(site model.SiteParams, base model.Assumptions, low, high, step float64) (*Breakeven, error) {
	values, err := Range(low, high, step)
	if err != nil {
		return nil, err
	}

	for _, price := range values {
		a := base
		a.SellingPrice = price
		res, err := model.Simulate(site, a)
		if err != nil {
			continue
		}
		if res.NPV >= 0 {
			return &Breakeven{Price: price, IRR: res.IRR, NPV: res.NPV}, nil
		}
	}
	return nil, nil
}

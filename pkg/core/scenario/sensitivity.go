package scenario

import "feasibility_sim/pkg/core/model"

// Grid is a two-way sensitivity table: NPV for every combination of selling
// price (rows) and discount rate (columns). A nil cell marks a combination
// whose simulation failed.
type Grid struct {
	Prices []float64    `json:"prices"`
	Rates  []float64    `json:"rates"`
	NPV    [][]*float64 `json:"npv"` // NPV[i][j] = price Prices[i] at rate Rates[j]
}

// Sensitivity evaluates the model over the full price x rate cross product.
// Cell failures are isolated the same way sweep rows are.
func Sensitivity(site model.SiteParams, base model.Assumptions, prices, rates []float64) Grid {
	g := Grid{
		Prices: prices,
		Rates:  rates,
		NPV:    make([][]*float64, len(prices)),
	}
	for i, price := range prices {
		g.NPV[i] = make([]*float64, len(rates))
		for j, rate := range rates {
			a := base
			a.SellingPrice = price
			a.DiscountRate = rate
			res, err := model.Simulate(site, a)
			if err != nil {
				continue
			}
			npv := res.NPV
			g.NPV[i][j] = &npv
		}
	}
	return g
}

package report

import (
	"fmt"
	"strconv"
)

// Sheet names, in workbook order.
const (
	SheetInputs      = "Inputs"
	SheetResults     = "Results"
	SheetBreakeven   = "Breakeven"
	SheetCashFlows   = "Cash Flows"
	SheetScenarios   = "Scenarios"
	SheetSensitivity = "Sensitivity"
)

// Table is plain tabular data: a name, a header row, and string cells.
type Table struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Tables renders the report as its six standard tables, one per workbook
// sheet, in workbook order.
func (r *Report) Tables() []Table {
	return []Table{
		r.inputsTable(),
		r.resultsTable(),
		r.breakevenTable(),
		r.cashFlowTable(),
		r.scenarioTable(),
		r.sensitivityTable(),
	}
}

func (r *Report) inputsTable() Table {
	a, s := r.Assumptions, r.Site
	granularity := a.Granularity
	if granularity == "" {
		granularity = "annual"
	}
	return Table{
		Name:   SheetInputs,
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Selling Price (SAR/sqm)", fmtMoney(a.SellingPrice)},
			{"Land Price (SAR/sqm)", fmtMoney(a.LandPrice)},
			{"Loan Fraction", fmtRatio(a.LoanFraction)},
			{"Discount Rate", fmtRatio(a.DiscountRate)},
			{"Duration (years)", strconv.Itoa(a.DurationYears)},
			{"Granularity", string(granularity)},
			{"Site Area (sqm)", fmtMoney(s.SiteArea)},
			{"Sellable Fraction", fmtRatio(s.SellableFraction)},
			{"Dev Cost (SAR/sqm)", fmtMoney(s.DevCostPerSqm)},
		},
	}
}

func (r *Report) resultsTable() Table {
	res := r.Result
	return Table{
		Name:   SheetResults,
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"IRR", fmtPct(res.IRR)},
			{"NPV (SAR)", fmtMoney(res.NPV)},
			{"ROIC", fmtMultiple(res.ROIC)},
			{"Revenue (SAR)", fmtMoney(res.Revenue)},
			{"Total Cost (SAR)", fmtMoney(res.TotalCost)},
			{"Equity (SAR)", fmtMoney(res.Equity)},
			{"Loan Amount (SAR)", fmtMoney(res.LoanAmount)},
		},
	}
}

func (r *Report) breakevenTable() Table {
	t := Table{
		Name:   SheetBreakeven,
		Header: []string{"Breakeven Price (SAR/sqm)", "IRR", "NPV (SAR)"},
	}
	if r.Breakeven == nil {
		t.Rows = [][]string{{notAvailable, notAvailable, notAvailable}}
		return t
	}
	t.Rows = [][]string{{
		fmtMoney(r.Breakeven.Price),
		fmtPct(r.Breakeven.IRR),
		fmtMoney(r.Breakeven.NPV),
	}}
	return t
}

func (r *Report) cashFlowTable() Table {
	t := Table{
		Name:   SheetCashFlows,
		Header: []string{"Period", "Net Cash Flow (SAR)"},
	}
	for i, cf := range r.Result.CashFlows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i), fmtMoney(cf)})
	}
	return t
}

func (r *Report) scenarioTable() Table {
	t := Table{
		Name:   SheetScenarios,
		Header: []string{"Parameter", "Value", "IRR", "NPV (SAR)", "ROIC"},
	}
	for _, row := range r.PriceSweep {
		t.Rows = append(t.Rows, []string{
			"Selling Price", fmtMoney(row.Value),
			fmtPct(row.IRR), fmtOptMoney(row.NPV), fmtMultiple(row.ROIC),
		})
	}
	for _, row := range r.RateSweep {
		t.Rows = append(t.Rows, []string{
			"Discount Rate", fmtRatio(row.Value),
			fmtPct(row.IRR), fmtOptMoney(row.NPV), fmtMultiple(row.ROIC),
		})
	}
	return t
}

func (r *Report) sensitivityTable() Table {
	g := r.Sensitivity
	header := []string{"Price \\ Rate"}
	for _, rate := range g.Rates {
		header = append(header, fmtRatio(rate))
	}
	t := Table{Name: SheetSensitivity, Header: header}
	for i, price := range g.Prices {
		row := []string{fmtMoney(price)}
		for j := range g.Rates {
			row = append(row, fmtOptMoney(g.NPV[i][j]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

const notAvailable = "N/A"

func fmtMoney(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }

func fmtRatio(v float64) string { return fmt.Sprintf("%.2f", v) }

func fmtOptMoney(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmtMoney(*v)
}

func fmtPct(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

func fmtMultiple(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2fx", *v)
}

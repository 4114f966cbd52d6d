package report

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"feasibility_sim/pkg/core/model"
)

func referenceAssumptions() model.Assumptions {
	return model.Assumptions{
		SellingPrice:  3500,
		LandPrice:     3000,
		LoanFraction:  0.7,
		DiscountRate:  0.11,
		DurationYears: 5,
		Granularity:   model.Annual,
	}
}

func buildReference(t *testing.T) *Report {
	t.Helper()
	rep, err := Build(model.DefaultSite(), referenceAssumptions(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return rep
}

func TestBuildRejectsInvalidScenario(t *testing.T) {
	a := referenceAssumptions()
	a.DurationYears = 0
	if _, err := Build(model.DefaultSite(), a, DefaultOptions()); !errors.Is(err, model.ErrInvalidAssumption) {
		t.Errorf("Expected ErrInvalidAssumption, got %v", err)
	}
}

func TestTablesShape(t *testing.T) {
	rep := buildReference(t)
	tables := rep.Tables()

	names := make([]string, len(tables))
	for i, tbl := range tables {
		names[i] = tbl.Name
	}
	expected := []string{SheetInputs, SheetResults, SheetBreakeven, SheetCashFlows, SheetScenarios, SheetSensitivity}
	if !reflect.DeepEqual(names, expected) {
		t.Fatalf("Expected sheets %v, got %v", expected, names)
	}

	for _, tbl := range tables {
		if len(tbl.Header) == 0 {
			t.Errorf("Table %s has no header", tbl.Name)
		}
		for i, row := range tbl.Rows {
			if len(row) != len(tbl.Header) {
				t.Errorf("Table %s row %d: %d cells vs %d header columns",
					tbl.Name, i, len(row), len(tbl.Header))
			}
		}
	}

	// Cash flows: one row per series entry.
	cashFlows := tables[3]
	if want := rep.Result.Periods + 1; len(cashFlows.Rows) != want {
		t.Errorf("Expected %d cash-flow rows, got %d", want, len(cashFlows.Rows))
	}

	// Scenarios: price sweep then rate sweep, in order.
	scenarios := tables[4]
	if want := len(rep.PriceSweep) + len(rep.RateSweep); len(scenarios.Rows) != want {
		t.Errorf("Expected %d scenario rows, got %d", want, len(scenarios.Rows))
	}

	// Sensitivity: one header column per rate plus the price label column.
	sensitivity := tables[5]
	if want := len(rep.Sensitivity.Rates) + 1; len(sensitivity.Header) != want {
		t.Errorf("Expected %d sensitivity columns, got %d", want, len(sensitivity.Header))
	}
	if len(sensitivity.Rows) != len(rep.Sensitivity.Prices) {
		t.Errorf("Expected %d sensitivity rows, got %d", len(rep.Sensitivity.Prices), len(sensitivity.Rows))
	}
}

// The reference scenario is loss-making: IRR renders N/A everywhere and the
// 1000-5000 scan finds no breakeven, which the table must say outright
// rather than show a zero.
func TestTablesUndefinedRendering(t *testing.T) {
	rep := buildReference(t)

	irr, _, roic := rep.Headline()
	if irr != "N/A" {
		t.Errorf("Expected headline IRR N/A, got %q", irr)
	}
	if roic != "0.60x" {
		t.Errorf("Expected headline ROIC 0.60x, got %q", roic)
	}

	if rep.Breakeven != nil {
		t.Fatalf("Reference scenario should have no breakeven in range, got %f", rep.Breakeven.Price)
	}
	be := rep.Tables()[2]
	if be.Rows[0][0] != "N/A" {
		t.Errorf("Expected N/A breakeven row, got %v", be.Rows[0])
	}
}

func TestWriteWorkbook(t *testing.T) {
	rep := buildReference(t)

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, rep); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Workbook does not reopen: %v", err)
	}
	defer f.Close()

	expected := []string{SheetInputs, SheetResults, SheetBreakeven, SheetCashFlows, SheetScenarios, SheetSensitivity}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected sheet list %v, got %v", expected, got)
	}

	// Spot-check a known cell: first metric row of the Results sheet.
	cell, err := f.GetCellValue(SheetResults, "A2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if cell != "IRR" {
		t.Errorf(`Expected Results!A2 = "IRR", got %q`, cell)
	}

	props, err := f.GetDocProps()
	if err != nil {
		t.Fatalf("GetDocProps failed: %v", err)
	}
	if props.Identifier != rep.ID.String() {
		t.Errorf("Expected report ID %s in doc props, got %q", rep.ID, props.Identifier)
	}
}

func TestRenderMarkdown(t *testing.T) {
	rep := buildReference(t)
	md := RenderMarkdown(rep)

	if !ValidateMarkdown(md) {
		t.Fatal("Rendered report failed markdown validation")
	}
	for _, heading := range []string{"## Inputs", "## Results", "## Breakeven", "## Cash Flows", "## Scenarios", "## Sensitivity"} {
		if !strings.Contains(md, heading) {
			t.Errorf("Report missing section %q", heading)
		}
	}
	if !strings.Contains(md, "N/A") {
		t.Error("Undefined IRR should render as N/A in the report")
	}
	if !strings.Contains(md, rep.ID.String()) {
		t.Error("Report should carry its ID")
	}
}

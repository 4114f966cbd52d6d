package scenario

import (
	"errors"
	"reflect"
	"testing"

	"feasibility_sim/pkg/core/model"
)

func baseAssumptions() model.Assumptions {
	return model.Assumptions{
		SellingPrice:  3500,
		LandPrice:     3000,
		LoanFraction:  0.7,
		DiscountRate:  0.11,
		DurationYears: 5,
		Granularity:   model.Annual,
	}
}

func TestSweepPreservesCandidateOrder(t *testing.T) {
	values := []float64{5000, 3000, 4000} // deliberately unsorted
	rows, err := Sweep(model.DefaultSite(), baseAssumptions(), FieldSellingPrice, values)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(rows) != len(values) {
		t.Fatalf("Expected %d rows, got %d", len(values), len(rows))
	}
	for i, v := range values {
		if rows[i].Value != v {
			t.Errorf("Row %d: expected value %f, got %f", i, v, rows[i].Value)
		}
	}
}

func TestSweepDeterminism(t *testing.T) {
	values := []float64{3000, 3500, 4000, 4500, 5000}
	first, err := Sweep(model.DefaultSite(), baseAssumptions(), FieldSellingPrice, values)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	second, err := Sweep(model.DefaultSite(), baseAssumptions(), FieldSellingPrice, values)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Two identical sweeps produced different results")
	}
}

// A candidate that fails validation blanks its own row; the neighbours are
// still fully populated.
func TestSweepIsolatesFailingCandidate(t *testing.T) {
	rows, err := Sweep(model.DefaultSite(), baseAssumptions(), FieldDuration, []float64{0, 5})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	bad := rows[0]
	if bad.Value != 0 {
		t.Errorf("Failing row keeps its candidate value, got %f", bad.Value)
	}
	if bad.IRR != nil || bad.NPV != nil || bad.ROIC != nil {
		t.Error("Failing candidate must carry nil metrics, not fabricated values")
	}

	good := rows[1]
	if good.NPV == nil || good.ROIC == nil {
		t.Error("Valid candidate should have NPV and ROIC populated")
	}
}

// The reference scenario is loss-making at every candidate price in the
// slider range, so NPV is populated while IRR stays undefined per row.
func TestSweepUndefinedIRRDoesNotAbort(t *testing.T) {
	rows, err := Sweep(model.DefaultSite(), baseAssumptions(), FieldSellingPrice, []float64{3000, 3500})
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	for i, row := range rows {
		if row.IRR != nil {
			t.Errorf("Row %d: expected undefined IRR, got %f", i, *row.IRR)
		}
		if row.NPV == nil {
			t.Errorf("Row %d: NPV should still be populated", i)
		}
		if row.ROIC == nil {
			t.Errorf("Row %d: ROIC should still be populated", i)
		}
	}
}

func TestSweepDiscountRateField(t *testing.T) {
	rates := []float64{0.08, 0.11, 0.15}
	rows, err := Sweep(model.DefaultSite(), baseAssumptions(), FieldDiscountRate, rates)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	// Discounting negative periodic flows less harshly makes NPV worse:
	// NPV must be strictly decreasing as the rate falls for this shape.
	for i := 1; i < len(rows); i++ {
		if rows[i].NPV == nil || rows[i-1].NPV == nil {
			t.Fatal("NPV should be populated for every rate")
		}
		if *rows[i].NPV <= *rows[i-1].NPV {
			t.Errorf("Expected NPV to rise with the discount rate for an all-negative tail, got %f then %f",
				*rows[i-1].NPV, *rows[i].NPV)
		}
	}
}

func TestSweepUnknownField(t *testing.T) {
	_, err := Sweep(model.DefaultSite(), baseAssumptions(), Field("site_area"), []float64{1})
	if err == nil {
		t.Fatal("Expected error for unknown field")
	}
	if !errors.Is(err, model.ErrInvalidAssumption) {
		t.Errorf("Expected ErrInvalidAssumption, got %v", err)
	}
}

func TestRange(t *testing.T) {
	values, err := Range(1000, 1200, 50)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	expected := []float64{1000, 1050, 1100, 1150, 1200}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Expected %v, got %v", expected, values)
	}

	if _, err := Range(0, 10, 0); !errors.Is(err, model.ErrInvalidAssumption) {
		t.Error("Expected ErrInvalidAssumption for zero step")
	}
	if _, err := Range(10, 0, 1); !errors.Is(err, model.ErrInvalidAssumption) {
		t.Error("Expected ErrInvalidAssumption for inverted range")
	}

	// Single point range.
	single, err := Range(5, 5, 1)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(single) != 1 || single[0] != 5 {
		t.Errorf("Expected [5], got %v", single)
	}
}

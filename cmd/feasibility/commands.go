package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"feasibility_sim/pkg/core/model"
	"feasibility_sim/pkg/core/report"
	"feasibility_sim/pkg/core/scenario"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the cash-flow model for the current assumptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := model.Simulate(site, assumptionsFromFlags())
		if err != nil {
			return err
		}
		printMetrics(res)
		fmt.Println("\nPeriod  Net Cash Flow (SAR)")
		for i, cf := range res.CashFlows {
			fmt.Printf("%6d  %15.0f\n", i, cf)
		}
		return nil
	},
}

var (
	flagSweepField string
	flagSweepFrom  float64
	flagSweepTo    float64
	flagSweepStep  float64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one assumption across a range and tabulate the metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := scenario.Range(flagSweepFrom, flagSweepTo, flagSweepStep)
		if err != nil {
			return err
		}
		rows, err := scenario.Sweep(site, assumptionsFromFlags(), scenario.Field(flagSweepField), values)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s  %-9s  %-15s  %-6s\n", flagSweepField, "IRR", "NPV (SAR)", "ROIC")
		for _, row := range rows {
			fmt.Printf("%-12g  %-9s  %-15s  %-6s\n",
				row.Value, pct(row.IRR), money(row.NPV), multiple(row.ROIC))
		}
		return nil
	},
}

var (
	flagBeLow  float64
	flagBeHigh float64
	flagBeStep float64
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Scan selling price upward for the first non-negative NPV",
	RunE: func(cmd *cobra.Command, args []string) error {
		be, err := scenario.FindBreakeven(site, assumptionsFromFlags(), flagBeLow, flagBeHigh, flagBeStep)
		if err != nil {
			return err
		}
		if be == nil {
			fmt.Printf("no breakeven price in [%g, %g]\n", flagBeLow, flagBeHigh)
			return nil
		}
		npv := be.NPV
		fmt.Printf("breakeven price: SAR %.0f/sqm (IRR %s, NPV %s)\n", be.Price, pct(be.IRR), money(&npv))
		return nil
	},
}

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full report as an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := report.Build(site, assumptionsFromFlags(), report.DefaultOptions())
		if err != nil {
			return err
		}
		f, err := os.Create(flagOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := report.WriteWorkbook(f, rep); err != nil {
			return err
		}
		fmt.Printf("wrote %s (report %s)\n", flagOut, rep.ID)
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the full report as markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := report.Build(site, assumptionsFromFlags(), report.DefaultOptions())
		if err != nil {
			return err
		}
		md := report.RenderMarkdown(rep)
		if !report.ValidateMarkdown(md) {
			return fmt.Errorf("rendered report is not valid markdown")
		}
		fmt.Print(md)
		return nil
	},
}

func init() {
	sweepCmd.Flags().StringVar(&flagSweepField, "field", string(scenario.FieldSellingPrice),
		"assumption to vary (selling_price, land_price, loan_fraction, discount_rate, duration)")
	sweepCmd.Flags().Float64Var(&flagSweepFrom, "from", 3000, "first candidate value")
	sweepCmd.Flags().Float64Var(&flagSweepTo, "to", 5000, "last candidate value (inclusive)")
	sweepCmd.Flags().Float64Var(&flagSweepStep, "step", 100, "candidate increment")

	breakevenCmd.Flags().Float64Var(&flagBeLow, "low", 1000, "lowest selling price to try")
	breakevenCmd.Flags().Float64Var(&flagBeHigh, "high", 5000, "highest selling price to try")
	breakevenCmd.Flags().Float64Var(&flagBeStep, "step", 50, "price increment")

	exportCmd.Flags().StringVar(&flagOut, "out", "feasibility.xlsx", "output workbook path")
}

func printMetrics(res *model.Result) {
	npv := res.NPV
	fmt.Printf("IRR:   %s\n", pct(res.IRR))
	fmt.Printf("NPV:   %s\n", money(&npv))
	fmt.Printf("ROIC:  %s\n", multiple(res.ROIC))
	fmt.Printf("\nRevenue:    SAR %.0f\nTotal Cost: SAR %.0f\nEquity:     SAR %.0f\nLoan:       SAR %.0f\n",
		res.Revenue, res.TotalCost, res.Equity, res.LoanAmount)
}

func pct(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

func money(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("SAR %.0f", *v)
}

func multiple(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fx", *v)
}

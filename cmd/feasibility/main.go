// Feasibility What-If Simulator — CLI entrypoint.
//
// Runs the cash-flow model and its derived views (sweeps, breakeven scan,
// workbook export) from the command line using cobra subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"feasibility_sim/pkg/core/config"
	"feasibility_sim/pkg/core/model"
)

var (
	flagPrice   float64
	flagLand    float64
	flagLoan    float64
	flagRate    float64
	flagYears   int
	flagMonthly bool
	flagSite    string

	site model.SiteParams
)

var rootCmd = &cobra.Command{
	Use:   "feasibility",
	Short: "Real-estate feasibility what-if simulator",
	Long: `Feasibility What-If Simulator

Turns five project assumptions (selling price, land price, loan fraction,
discount rate, duration) into IRR, NPV and ROIC, plus scenario sweeps,
a breakeven price scan and a spreadsheet export.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		godotenv.Load()
		var err error
		site, err = config.LoadSite(flagSite)
		return err
	},
	SilenceUsage: true,
}

func assumptionsFromFlags() model.Assumptions {
	a := model.Assumptions{
		SellingPrice:  flagPrice,
		LandPrice:     flagLand,
		LoanFraction:  flagLoan,
		DiscountRate:  flagRate,
		DurationYears: flagYears,
		Granularity:   model.Annual,
	}
	if flagMonthly {
		a.Granularity = model.Monthly
	}
	return a
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagPrice, "price", 3500, "selling price (SAR/sqm)")
	pf.Float64Var(&flagLand, "land", 3000, "land price (SAR/sqm)")
	pf.Float64Var(&flagLoan, "loan", 0.7, "loan fraction of total cost, in [0,1]")
	pf.Float64Var(&flagRate, "rate", 0.11, "annual discount rate (WACC)")
	pf.IntVar(&flagYears, "years", 5, "project duration in years")
	pf.BoolVar(&flagMonthly, "monthly", false, "use monthly cash-flow periods")
	pf.StringVar(&flagSite, "site", "", "site parameters YAML (defaults to $SITE_CONFIG)")

	rootCmd.AddCommand(simulateCmd, sweepCmd, breakevenCmd, exportCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

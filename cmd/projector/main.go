package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/investhome/savings-projector/internal/calculation"
	"github.com/investhome/savings-projector/internal/catalog"
	"github.com/investhome/savings-projector/internal/config"
	"github.com/investhome/savings-projector/internal/domain"
	"github.com/investhome/savings-projector/internal/logger"
	"github.com/investhome/savings-projector/internal/output"
	"github.com/investhome/savings-projector/internal/quote"
)

var (
	planFile   string
	formatName string
	outputFile string
	quoteDir   string
	logLevel   string
)

func main() {
	logger.Init()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "projector",
		Short: "Project future savings balances under compounding growth",
		Long: `projector models how a savings balance evolves under periodic
contributions and a compounding annual return, optionally adjusted for
inflation, and compares multiple investment-return assumptions side by
side. Historical returns are estimated from closing-price history when an
investment option references a tradable symbol.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				logger.SetLevel(logLevel)
			}
		},
	}

	root.PersistentFlags().StringVarP(&planFile, "config", "c", "plan.yaml", "savings plan YAML file")
	root.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, json)")
	root.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	root.PersistentFlags().StringVar(&quoteDir, "quote-dir", "", "read close-price history from CSV files in this directory instead of the network")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newProjectCmd(), newCompareCmd(), newExampleConfigCmd())
	return root
}

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Run the savings projection for the selected investment option",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildReport(cmd.Context(), false, nil)
			if err != nil {
				return err
			}
			return writeReport(report)
		},
	}
}

func newCompareCmd() *cobra.Command {
	var optionLabels []string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the plan across multiple investment options",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildReport(cmd.Context(), true, optionLabels)
			if err != nil {
				return err
			}
			return writeReport(report)
		},
	}
	cmd.Flags().StringSliceVar(&optionLabels, "options", nil, "option labels to compare (default: the plan's selected option)")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example savings plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "plan.yaml"
			if len(args) == 1 {
				target = args[0]
			}
			if err := config.NewInputParser().WriteExamplePlan(target); err != nil {
				return err
			}
			fmt.Println("Example plan written to", target)
			return nil
		},
	}
}

// buildReport runs the projection described by the plan file. When
// withComparison is set a comparison across compareLabels is attached;
// an empty label list compares the plan's selected option alone.
func buildReport(ctx context.Context, withComparison bool, compareLabels []string) (*domain.ProjectionReport, error) {
	plan, err := config.NewInputParser().LoadFromFile(planFile)
	if err != nil {
		return nil, err
	}

	options, catalogWarning := catalog.NewLoader(plan.CatalogPath).Load(plan.Exchange)

	estimator := calculation.NewReturnEstimator(newProvider())
	estimator.LookbackYears = plan.LookbackYears
	estimator.SetLogger(logger.Calc{})

	report := &domain.ProjectionReport{StartAge: plan.CurrentAge}
	if catalogWarning != nil {
		report.Warnings = append(report.Warnings, *catalogWarning)
	}

	selected, ok := options.Lookup(plan.SelectedOption)
	if !ok {
		return nil, fmt.Errorf("unknown investment option %q; available: %s",
			plan.SelectedOption, strings.Join(options.Labels(), ", "))
	}

	rate, warning := resolveRate(ctx, estimator, selected, plan.ManualAnnualReturn)
	if warning != nil {
		report.Warnings = append(report.Warnings, *warning)
	}
	if plan.AdjustForInflation {
		rate = calculation.AdjustForInflation(rate, plan.InflationRate)
	}

	input := plan.ProjectionInput(rate)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger.Calc{})
	report.Input = input
	report.Trajectory = engine.Project(input)
	report.Metrics = calculation.Summarize(input, report.Trajectory)

	if withComparison {
		if len(compareLabels) == 0 {
			compareLabels = []string{plan.SelectedOption}
		}
		compared := make([]domain.InvestmentOption, 0, len(compareLabels))
		for _, label := range compareLabels {
			option, ok := options.Lookup(label)
			if !ok {
				return nil, fmt.Errorf("unknown investment option %q; available: %s",
					label, strings.Join(options.Labels(), ", "))
			}
			compared = append(compared, option)
		}

		runner := calculation.NewComparisonRunner(estimator)
		runner.Logger = logger.Calc{}
		report.Comparison = runner.Compare(ctx, compared, input, plan.ManualAnnualReturn)
		report.Warnings = append(report.Warnings, report.Comparison.Warnings...)
	}

	return report, nil
}

func resolveRate(ctx context.Context, estimator *calculation.ReturnEstimator, option domain.InvestmentOption, manualRate decimal.Decimal) (decimal.Decimal, *domain.Warning) {
	switch option.Kind {
	case domain.OptionSymbol:
		return estimator.Estimate(ctx, option.Symbol)
	case domain.OptionFixedRate:
		return option.Rate, nil
	default:
		return manualRate, nil
	}
}

func newProvider() calculation.QuoteProvider {
	if quoteDir != "" {
		return quote.NewCSVDirProvider(quoteDir)
	}
	return quote.NewYahooClient()
}

func writeReport(report *domain.ProjectionReport) error {
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q; available: %s",
			formatName, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	// The csv format exports the comparison table when one is present.
	if report.Comparison != nil && output.NormalizeFormatName(formatName) == "csv" {
		formatter = output.CSVComparisonExporter{}
	}

	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	if outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputFile, data, 0644)
}

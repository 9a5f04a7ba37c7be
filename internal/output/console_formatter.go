package output

import (
	"bytes"
	"fmt"

	"github.com/investhome/savings-projector/internal/domain"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAVINGS PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Starting Balance:      %s\n", FormatCompactCurrency(report.Input.StartingBalance))
	fmt.Fprintf(&buf, "Annual Contribution:   %s\n", FormatCompactCurrency(report.Input.AnnualContribution))
	fmt.Fprintf(&buf, "Horizon:               %d years\n", report.Input.HorizonYears)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY METRICS")
	fmt.Fprintf(&buf, "Total Savings at Retirement: %s\n", FormatCompactCurrency(report.Trajectory.FinalBalance()))
	fmt.Fprintf(&buf, "Total Contributions:         %s\n", FormatCompactCurrency(report.Metrics.TotalContributions))
	fmt.Fprintf(&buf, "Total Returns:               %s\n", FormatCompactCurrency(report.Metrics.TotalGrowth))
	fmt.Fprintf(&buf, "CAGR:                        %s\n", FormatPercentage(report.Metrics.CAGR))
	fmt.Fprintf(&buf, "Annual Return:               %s\n", FormatPercentage(report.Metrics.AnnualReturnUsed))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEARLY BREAKDOWN")
	fmt.Fprintf(&buf, "%-6s %18s %18s %18s\n", "Year", "Total Savings", "Contributions", "Growth")
	for i, rec := range report.Trajectory {
		fmt.Fprintf(&buf, "%-6d %18s %18s %18s\n",
			report.YearLabel(i),
			FormatCurrency(rec.Balance),
			FormatCurrency(rec.CumulativeContributions),
			FormatCurrency(rec.CumulativeGrowth),
		)
	}

	if report.Comparison != nil && len(report.Comparison.Rows) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "INVESTMENT COMPARISON")
		fmt.Fprintf(&buf, "%-32s %14s %16s %16s %10s\n", "Option", "Annual Return", "Contributions", "Total Savings", "CAGR")
		for _, row := range report.Comparison.Rows {
			fmt.Fprintf(&buf, "%-32s %14s %16s %16s %10s\n",
				row.Label,
				FormatPercentage(row.AnnualReturn),
				FormatCompactCurrency(row.Metrics.TotalContributions),
				FormatCompactCurrency(lastBalance(row.Balances)),
				FormatPercentage(row.Metrics.CAGR),
			)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintln(&buf)
		for _, w := range report.Warnings {
			fmt.Fprintf(&buf, "warning: %s\n", w.String())
		}
	}

	return buf.Bytes(), nil
}

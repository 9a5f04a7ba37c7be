package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/investhome/savings-projector/internal/domain"
)

// CSVComparisonExporter writes the comparison table, one row per compared
// option, in input order and at full numeric precision.
type CSVComparisonExporter struct{}

func (c CSVComparisonExporter) Name() string { return "comparison-csv" }

func (c CSVComparisonExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	if report.Comparison == nil {
		return nil, fmt.Errorf("report has no comparison to export")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Option", "Annual Return", "Total Contributions", "Total Savings", "Total Growth", "CAGR"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Comparison.Rows {
		record := []string{
			row.Label,
			row.AnnualReturn.String(),
			row.Metrics.TotalContributions.String(),
			lastBalance(row.Balances).String(),
			row.Metrics.TotalGrowth.String(),
			row.Metrics.CAGR.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func lastBalance(balances []decimal.Decimal) decimal.Decimal {
	if len(balances) == 0 {
		return decimal.Zero
	}
	return balances[len(balances)-1]
}

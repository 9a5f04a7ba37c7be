package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/investhome/savings-projector/internal/domain"
)

// CSVTrajectoryExporter writes the year-by-year projection, one row per
// year, suitable for download. Values are written at full numeric
// precision; the compact on-screen form is never used here.
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "csv" }

func (c CSVTrajectoryExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Total Savings", "Contributions", "Growth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, rec := range report.Trajectory {
		row := []string{
			strconv.Itoa(report.YearLabel(i)),
			rec.Balance.String(),
			rec.CumulativeContributions.String(),
			rec.CumulativeGrowth.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

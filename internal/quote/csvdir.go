package quote

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/investhome/savings-projector/internal/domain"
)

// CSVDirProvider serves close-price history from per-symbol CSV files in a
// directory, for offline runs and deterministic tests. Files are named
// <symbol>.csv with a header row and "date,close" rows (date 2006-01-02).
type CSVDirProvider struct {
	DataPath string
}

// NewCSVDirProvider creates a provider rooted at dataPath.
func NewCSVDirProvider(dataPath string) *CSVDirProvider {
	return &CSVDirProvider{DataPath: dataPath}
}

// CloseHistory loads the symbol's file and returns the observations inside
// the trailing window of the given number of years, ascending by date.
func (p *CSVDirProvider) CloseHistory(_ context.Context, symbol string, years int) (domain.PriceSeries, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	filePath := filepath.Join(p.DataPath, strings.ToUpper(symbol)+".csv")
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file %s: %w", filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", filePath, err)
	}

	var series domain.PriceSeries
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row in %s: %w", filePath, err)
		}
		if len(record) < 2 {
			continue // Skip malformed rows
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
		if err != nil {
			continue // Skip rows with invalid dates
		}
		close, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			continue // Skip rows with invalid prices
		}

		series = append(series, domain.PricePoint{Date: date, Close: close})
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("no valid price points found in %s", filePath)
	}

	if years >= 1 {
		cutoff := series[len(series)-1].Date.AddDate(-years, 0, 0)
		trimmed := series[:0]
		for _, point := range series {
			if !point.Date.Before(cutoff) {
				trimmed = append(trimmed, point)
			}
		}
		series = trimmed
	}

	return series, nil
}

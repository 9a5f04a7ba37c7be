// Package catalog loads the ordered set of investment options offered for
// projection and comparison. Catalogs are data files; a missing or corrupt
// file degrades to the built-in option set with a non-fatal warning.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/investhome/savings-projector/internal/domain"
)

// CustomOptionLabel marks the option that substitutes the manually entered
// rate instead of resolving one.
const CustomOptionLabel = "Custom"

// Exchange file names, one catalog per exchange.
var exchangeFiles = map[string]string{
	"NASDAQ":      "nasdaq.csv",
	"TSX TORONTO": "tsx.csv",
	"NYSE":        "nyse.csv",
	"CRYPTO":      "crypto.csv",
}

// Loader reads per-exchange option catalogs from a data directory.
type Loader struct {
	DataPath string
}

// NewLoader creates a loader rooted at dataPath. An empty path always
// yields the built-in option set.
func NewLoader(dataPath string) *Loader {
	return &Loader{DataPath: dataPath}
}

// BuiltinOptions returns the fixed option set available regardless of any
// catalog file: two index funds, two crypto assets, two bond tiers, and
// the manual-rate sentinel.
func BuiltinOptions() domain.Catalog {
	return domain.Catalog{
		{Label: "S&P 500 Index Fund (ETF)", Kind: domain.OptionSymbol, Symbol: "SPY"},
		{Label: "Nasdaq ETF (QQQ)", Kind: domain.OptionSymbol, Symbol: "QQQ"},
		{Label: "Bitcoin (BTC)", Kind: domain.OptionSymbol, Symbol: "BTC-USD"},
		{Label: "Ethereum (ETH)", Kind: domain.OptionSymbol, Symbol: "ETH-USD"},
		{Label: "Government Bond (10-year)", Kind: domain.OptionFixedRate, Rate: decimal.NewFromFloat(0.03)},
		{Label: "Corporate Bond (10-year)", Kind: domain.OptionFixedRate, Rate: decimal.NewFromFloat(0.05)},
		{Label: CustomOptionLabel, Kind: domain.OptionManual},
	}
}

// Load returns the catalog for the given exchange: the built-in set plus
// every valid row of the exchange's file. A missing or unreadable file is
// not fatal; the built-in set is returned along with a warning. Malformed
// rows are skipped silently.
func (l *Loader) Load(exchange string) (domain.Catalog, *domain.Warning) {
	options := BuiltinOptions()

	fileName, ok := exchangeFiles[strings.ToUpper(strings.TrimSpace(exchange))]
	if !ok || l.DataPath == "" {
		return options, nil
	}

	filePath := filepath.Join(l.DataPath, fileName)
	loaded, err := loadOptionsFile(filePath, isCryptoExchange(exchange))
	if err != nil {
		warning := domain.Warningf("catalog", "failed to load %s: %v; some investment options may be missing", filePath, err)
		return options, &warning
	}

	// File rows extend the built-in set but keep the Custom sentinel last.
	custom := options[len(options)-1]
	options = append(options[:len(options)-1], loaded...)
	return append(options, custom), nil
}

func isCryptoExchange(exchange string) bool {
	return strings.EqualFold(strings.TrimSpace(exchange), "CRYPTO")
}

// loadOptionsFile parses rows of the form "label,kind,value" where kind is
// "symbol" or "rate". Rows that fail to parse are skipped in aggregate.
func loadOptionsFile(filePath string, cryptoSymbols bool) (domain.Catalog, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var options domain.Catalog
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // Skip malformed rows
		}
		if len(record) < 3 {
			continue
		}

		label := strings.TrimSpace(record[0])
		kind := strings.ToLower(strings.TrimSpace(record[1]))
		value := strings.TrimSpace(record[2])
		if label == "" || value == "" {
			continue
		}

		switch kind {
		case string(domain.OptionSymbol):
			symbol := value
			if cryptoSymbols && !strings.HasSuffix(symbol, "-USD") {
				symbol += "-USD"
			}
			options = append(options, domain.InvestmentOption{Label: label, Kind: domain.OptionSymbol, Symbol: symbol})
		case string(domain.OptionFixedRate):
			rate, err := decimal.NewFromString(value)
			if err != nil {
				continue
			}
			options = append(options, domain.InvestmentOption{Label: label, Kind: domain.OptionFixedRate, Rate: rate})
		default:
			continue
		}
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("no valid option rows found")
	}
	return options, nil
}

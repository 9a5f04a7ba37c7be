package domain

import "github.com/shopspring/decimal"

// OptionKind tags how an investment option produces its annual return.
// Options are modeled as tagged variants rather than closures so catalogs
// built from external rows stay plain data.
type OptionKind string

const (
	// OptionSymbol resolves the rate from historical prices for a symbol.
	OptionSymbol OptionKind = "symbol"
	// OptionFixedRate uses a constant annual rate (e.g. bond instruments).
	OptionFixedRate OptionKind = "rate"
	// OptionManual substitutes the caller-supplied manual rate.
	OptionManual OptionKind = "manual"
)

// InvestmentOption maps a display label to a rate-producing behavior.
type InvestmentOption struct {
	Label  string          `json:"label"`
	Kind   OptionKind      `json:"kind"`
	Symbol string          `json:"symbol,omitempty"`
	Rate   decimal.Decimal `json:"rate,omitempty"`
}

// Catalog is an ordered set of investment options. Order is presentation
// order and is preserved through comparison runs.
type Catalog []InvestmentOption

// Lookup returns the option with the given label.
func (c Catalog) Lookup(label string) (InvestmentOption, bool) {
	for _, opt := range c {
		if opt.Label == label {
			return opt, true
		}
	}
	return InvestmentOption{}, false
}

// Labels returns the display labels in catalog order.
func (c Catalog) Labels() []string {
	out := make([]string, len(c))
	for i, opt := range c {
		out[i] = opt.Label
	}
	return out
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysPerYear is the mean year length used to convert a calendar span to
// fractional years, tolerating non-trading days and partial years.
const DaysPerYear = 365.25

// PricePoint is one closing price observation.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// PriceSeries is an ordered sequence of closing prices for one symbol,
// ascending by date. It is read-only input for return estimation and is
// discarded once a rate has been extracted.
type PriceSeries []PricePoint

// DropInvalid returns a copy of the series without zero or negative closes.
// Quote sources encode missing observations as zero values.
func (ps PriceSeries) DropInvalid() PriceSeries {
	out := make(PriceSeries, 0, len(ps))
	for _, p := range ps {
		if p.Close.GreaterThan(decimal.Zero) {
			out = append(out, p)
		}
	}
	return out
}

// ElapsedYears measures the span between the first and last observation in
// fractional years.
func (ps PriceSeries) ElapsedYears() float64 {
	if len(ps) < 2 {
		return 0
	}
	days := ps[len(ps)-1].Date.Sub(ps[0].Date).Hours() / 24
	return days / DaysPerYear
}

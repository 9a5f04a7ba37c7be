package calculation

import "github.com/shopspring/decimal"

// Default bounds for CapGrowth. Capping is an available operation but is
// not applied anywhere by default; callers decide whether to invoke it.
var (
	DefaultMinGrowthRate = decimal.NewFromFloat(0.02)
	DefaultMaxGrowthRate = decimal.NewFromFloat(0.20)
)

// AdjustForInflation converts a nominal annual rate to a real rate by
// subtracting the inflation rate. Pure; produces a new rate value.
func AdjustForInflation(rate, inflationRate decimal.Decimal) decimal.Decimal {
	return rate.Sub(inflationRate)
}

// CapGrowth clamps a growth assumption to the [minRate, maxRate] range.
func CapGrowth(rate, minRate, maxRate decimal.Decimal) decimal.Decimal {
	if rate.LessThan(minRate) {
		return minRate
	}
	if rate.GreaterThan(maxRate) {
		return maxRate
	}
	return rate
}

// CapGrowthDefault clamps a growth assumption to the default 2%..20% range.
func CapGrowthDefault(rate decimal.Decimal) decimal.Decimal {
	return CapGrowth(rate, DefaultMinGrowthRate, DefaultMaxGrowthRate)
}

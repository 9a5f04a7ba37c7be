package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/investhome/savings-projector/internal/domain"
)

// Summarize derives the headline metrics for a finished trajectory.
//
// TotalGrowth is defined as finalBalance - totalContributions -
// startingBalance, so the accounting identity
//
//	startingBalance + totalContributions + totalGrowth == finalBalance
//
// holds exactly for every trajectory, including negative-rate runs.
func Summarize(input domain.ProjectionInput, trajectory domain.Trajectory) domain.SummaryMetrics {
	totalContributions := input.AnnualContribution.Mul(decimal.NewFromInt(int64(input.HorizonYears)))
	finalBalance := trajectory.FinalBalance()
	totalGrowth := finalBalance.Sub(totalContributions).Sub(input.StartingBalance)

	return domain.SummaryMetrics{
		TotalContributions: totalContributions,
		TotalGrowth:        totalGrowth,
		CAGR:               CompoundAnnualGrowthRate(input.StartingBalance, finalBalance, input.HorizonYears),
		AnnualReturnUsed:   input.AnnualRate,
	}
}

// CompoundAnnualGrowthRate returns the constant annual rate that compounds
// start to end over the given number of years. With a zero starting balance
// or a zero horizon the rate is defined as zero rather than an error, so
// degenerate projections summarize cleanly.
func CompoundAnnualGrowthRate(start, end decimal.Decimal, years int) decimal.Decimal {
	if start.LessThanOrEqual(decimal.Zero) || years <= 0 {
		return decimal.Zero
	}
	// The fractional root has no exact decimal representation; go through
	// float64 the same way stddev-style statistics do.
	ratio, _ := end.Div(start).Float64()
	if ratio <= 0 {
		return decimal.Zero
	}
	cagr := math.Pow(ratio, 1/float64(years)) - 1
	return decimal.NewFromFloat(cagr)
}

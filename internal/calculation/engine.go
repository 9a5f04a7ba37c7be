package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/investhome/savings-projector/internal/domain"
)

// ProjectionEngine turns a ProjectionInput into a year-by-year Trajectory.
// The engine is a total function over validated inputs: it never fails,
// never clamps balances, and owns no state across runs.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger. A nil logger falls back to the no-op logger.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project produces the balance trajectory for the input. Year 0 is the
// initial state (balance = starting balance, nothing contributed, nothing
// grown); each subsequent year applies the input's growth convention.
// A zero horizon yields the single initial record.
func (pe *ProjectionEngine) Project(input domain.ProjectionInput) domain.Trajectory {
	convention := input.Convention
	if convention == "" {
		convention = domain.ContributionThenGrowth
	}

	trajectory := make(domain.Trajectory, 0, input.HorizonYears+1)
	trajectory = append(trajectory, domain.YearRecord{
		YearIndex:               0,
		Balance:                 input.StartingBalance,
		CumulativeContributions: decimal.Zero,
		CumulativeGrowth:        decimal.Zero,
	})

	balance := input.StartingBalance
	cumulativeContributions := decimal.Zero
	cumulativeGrowth := decimal.Zero
	one := decimal.NewFromInt(1)

	for year := 1; year <= input.HorizonYears; year++ {
		// Growth is always earned on the prior year's balance; the
		// convention decides how the new balance is assembled.
		growth := balance.Mul(input.AnnualRate)

		switch convention {
		case domain.GrowthThenContribution:
			balance = balance.Mul(one.Add(input.AnnualRate)).Add(input.AnnualContribution)
		default:
			balance = balance.Add(input.AnnualContribution).Add(growth)
		}

		cumulativeContributions = cumulativeContributions.Add(input.AnnualContribution)
		cumulativeGrowth = cumulativeGrowth.Add(growth)

		trajectory = append(trajectory, domain.YearRecord{
			YearIndex:               year,
			Balance:                 balance,
			CumulativeContributions: cumulativeContributions,
			CumulativeGrowth:        cumulativeGrowth,
		})
	}

	pe.Logger.Debugf("projected %d years: start=%s final=%s rate=%s",
		input.HorizonYears, input.StartingBalance.StringFixed(2),
		balance.StringFixed(2), input.AnnualRate.StringFixed(4))

	return trajectory
}

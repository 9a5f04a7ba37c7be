package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GrowthConvention selects the order in which annual growth and the annual
// contribution are applied when rolling a balance forward one year.
//
// The two orderings are deliberately kept as distinct, named strategies:
// the primary projection applies the contribution alongside growth computed
// on the prior balance, while the comparison table compounds the prior
// balance first and adds the contribution afterwards. Callers pick one per
// run; nothing picks silently.
type GrowthConvention string

const (
	// ContributionThenGrowth: balance_k = balance_{k-1} + contribution + balance_{k-1}*rate
	ContributionThenGrowth GrowthConvention = "contribution_then_growth"
	// GrowthThenContribution: balance_k = balance_{k-1}*(1+rate) + contribution
	GrowthThenContribution GrowthConvention = "growth_then_contribution"
)

// ProjectionInput holds the parameters for a single projection run.
// All monetary fields are annual amounts.
type ProjectionInput struct {
	StartingBalance    decimal.Decimal  `json:"starting_balance" yaml:"starting_balance"`
	AnnualContribution decimal.Decimal  `json:"annual_contribution" yaml:"annual_contribution"`
	AnnualRate         decimal.Decimal  `json:"annual_rate" yaml:"annual_rate"`
	HorizonYears       int              `json:"horizon_years" yaml:"horizon_years"`
	Convention         GrowthConvention `json:"convention,omitempty" yaml:"convention,omitempty"`
}

// Validate checks the caller contract for a projection run. Inputs are
// validated at the boundary; the engine itself assumes a valid input.
func (pi *ProjectionInput) Validate() error {
	if pi.StartingBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("starting balance cannot be negative")
	}
	if pi.AnnualContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("annual contribution cannot be negative")
	}
	if pi.HorizonYears < 0 {
		return fmt.Errorf("horizon years cannot be negative")
	}
	if pi.AnnualRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("annual rate must be greater than -100%%")
	}
	switch pi.Convention {
	case "", ContributionThenGrowth, GrowthThenContribution:
	default:
		return fmt.Errorf("unknown growth convention %q", pi.Convention)
	}
	return nil
}

// YearRecord is a single year of a projection trajectory.
// YearIndex 0 is the initial state before any contribution or growth.
type YearRecord struct {
	YearIndex               int             `json:"year_index"`
	Balance                 decimal.Decimal `json:"balance"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
	CumulativeGrowth        decimal.Decimal `json:"cumulative_growth"`
}

// Trajectory is the year-indexed balance series produced by one projection
// run. Length is always HorizonYears+1; index 0 is the initial state.
type Trajectory []YearRecord

// FinalBalance returns the balance of the last year record.
func (t Trajectory) FinalBalance() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].Balance
}

// Balances returns the per-year balance column.
func (t Trajectory) Balances() []decimal.Decimal {
	out := make([]decimal.Decimal, len(t))
	for i, rec := range t {
		out[i] = rec.Balance
	}
	return out
}

// SummaryMetrics are the headline numbers derived from one trajectory.
type SummaryMetrics struct {
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalGrowth        decimal.Decimal `json:"total_growth"`
	CAGR               decimal.Decimal `json:"cagr"`
	AnnualReturnUsed   decimal.Decimal `json:"annual_return_used"`
}

// ComparisonRow is the summary for one compared investment option.
type ComparisonRow struct {
	Label        string          `json:"label"`
	AnnualReturn decimal.Decimal `json:"annual_return"`
	Metrics      SummaryMetrics  `json:"metrics"`
	// Balances shares the year axis of every trajectory in the comparison.
	Balances []decimal.Decimal `json:"balances"`
}

// Comparison is an ordered set of comparison rows built on a shared input.
// Row order matches the order of the options that produced them.
type Comparison struct {
	Input    ProjectionInput `json:"input"`
	Rows     []ComparisonRow `json:"rows"`
	Warnings []Warning       `json:"warnings,omitempty"`
}

// ProjectionReport bundles everything the output layer renders for one run.
type ProjectionReport struct {
	Input      ProjectionInput `json:"input"`
	StartAge   int             `json:"start_age,omitempty"`
	Trajectory Trajectory      `json:"trajectory"`
	Metrics    SummaryMetrics  `json:"metrics"`
	Comparison *Comparison     `json:"comparison,omitempty"`
	Warnings   []Warning       `json:"warnings,omitempty"`
}

// YearLabel maps a trajectory index to the label used in exports and
// tables. When a start age is known the axis is expressed in ages,
// matching the year axis of the on-screen breakdown.
func (pr *ProjectionReport) YearLabel(index int) int {
	return pr.StartAge + index
}

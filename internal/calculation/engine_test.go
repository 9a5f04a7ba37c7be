package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/investhome/savings-projector/internal/domain"
)

func makeInput(start, contribution float64, rate float64, horizon int, convention domain.GrowthConvention) domain.ProjectionInput {
	return domain.ProjectionInput{
		StartingBalance:    decimal.NewFromFloat(start),
		AnnualContribution: decimal.NewFromFloat(contribution),
		AnnualRate:         decimal.NewFromFloat(rate),
		HorizonYears:       horizon,
		Convention:         convention,
	}
}

// Test zero-horizon projection: a single record equal to the initial state.
func TestProject_ZeroHorizon(t *testing.T) {
	engine := NewProjectionEngine()
	for _, convention := range []domain.GrowthConvention{domain.ContributionThenGrowth, domain.GrowthThenContribution} {
		traj := engine.Project(makeInput(12345.67, 6000, 0.09, 0, convention))
		if len(traj) != 1 {
			t.Fatalf("%s: expected 1 record, got %d", convention, len(traj))
		}
		if !traj[0].Balance.Equal(decimal.NewFromFloat(12345.67)) {
			t.Fatalf("%s: expected initial balance, got %s", convention, traj[0].Balance.String())
		}
		if !traj[0].CumulativeContributions.IsZero() || !traj[0].CumulativeGrowth.IsZero() {
			t.Fatalf("%s: initial record must have zero contributions and growth", convention)
		}
	}
}

// With rate zero, balance_k = start + contribution*k and both conventions coincide.
func TestProject_ZeroRate(t *testing.T) {
	engine := NewProjectionEngine()
	start := decimal.NewFromInt(1000)
	contribution := decimal.NewFromInt(250)

	for _, convention := range []domain.GrowthConvention{domain.ContributionThenGrowth, domain.GrowthThenContribution} {
		traj := engine.Project(makeInput(1000, 250, 0, 8, convention))
		for k, rec := range traj {
			expected := start.Add(contribution.Mul(decimal.NewFromInt(int64(k))))
			if !rec.Balance.Equal(expected) {
				t.Fatalf("%s: year %d expected %s, got %s", convention, k, expected.String(), rec.Balance.String())
			}
			if !rec.CumulativeGrowth.IsZero() {
				t.Fatalf("%s: year %d expected zero growth, got %s", convention, k, rec.CumulativeGrowth.String())
			}
		}
	}
}

// startingBalance + cumulativeContributions + cumulativeGrowth must equal
// the balance exactly, for every year of every trajectory.
func TestProject_AccountingIdentity(t *testing.T) {
	engine := NewProjectionEngine()
	inputs := []domain.ProjectionInput{
		makeInput(10000, 6000, 0.07, 35, domain.ContributionThenGrowth),
		makeInput(10000, 6000, 0.07, 35, domain.GrowthThenContribution),
		makeInput(50000, 0, -0.03, 20, domain.ContributionThenGrowth),
		makeInput(0, 1200, 0.12, 15, domain.GrowthThenContribution),
	}
	for _, input := range inputs {
		traj := engine.Project(input)
		for _, rec := range traj {
			sum := input.StartingBalance.Add(rec.CumulativeContributions).Add(rec.CumulativeGrowth)
			if !sum.Equal(rec.Balance) {
				t.Fatalf("year %d: identity broken: %s + %s + %s != %s",
					rec.YearIndex, input.StartingBalance.String(),
					rec.CumulativeContributions.String(), rec.CumulativeGrowth.String(),
					rec.Balance.String())
			}
		}
	}
}

// Verify the 35-year reference scenario against a direct loop oracle rather
// than a closed form, since contribution timing makes the closed form
// nontrivial.
func TestProject_ThirtyFiveYearOracle(t *testing.T) {
	engine := NewProjectionEngine()
	input := makeInput(10000, 6000, 0.07, 35, domain.ContributionThenGrowth)
	traj := engine.Project(input)

	if len(traj) != 36 {
		t.Fatalf("expected 36 records, got %d", len(traj))
	}
	if !traj[0].Balance.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected balance[0]=10000, got %s", traj[0].Balance.String())
	}

	// Direct oracle loop.
	rate := decimal.NewFromFloat(0.07)
	contribution := decimal.NewFromInt(6000)
	balance := decimal.NewFromInt(10000)
	for year := 1; year <= 35; year++ {
		growth := balance.Mul(rate)
		balance = balance.Add(contribution).Add(growth)
		if !traj[year].Balance.Equal(balance) {
			t.Fatalf("year %d: expected %s, got %s", year, balance.String(), traj[year].Balance.String())
		}
		if !traj[year].Balance.GreaterThan(traj[year-1].Balance) {
			t.Fatalf("year %d: balance sequence not increasing", year)
		}
	}
}

// Negative rates drive balances below the starting balance; nothing clamps.
func TestProject_NegativeRate(t *testing.T) {
	engine := NewProjectionEngine()
	traj := engine.Project(makeInput(10000, 0, -0.10, 5, domain.ContributionThenGrowth))

	final := traj.FinalBalance()
	if !final.LessThan(decimal.NewFromInt(10000)) {
		t.Fatalf("expected decline below starting balance, got %s", final.String())
	}
	for k := 1; k < len(traj); k++ {
		if !traj[k].Balance.LessThan(traj[k-1].Balance) {
			t.Fatalf("year %d: expected monotone decline", k)
		}
	}
}

// An empty convention defaults to contribution-then-growth.
func TestProject_DefaultConvention(t *testing.T) {
	engine := NewProjectionEngine()
	defaulted := engine.Project(makeInput(10000, 500, 0.05, 10, ""))
	explicit := engine.Project(makeInput(10000, 500, 0.05, 10, domain.ContributionThenGrowth))
	for k := range explicit {
		if !defaulted[k].Balance.Equal(explicit[k].Balance) {
			t.Fatalf("year %d: default convention diverged", k)
		}
	}
}

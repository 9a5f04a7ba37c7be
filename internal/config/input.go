package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/investhome/savings-projector/internal/domain"
)

// Contribution frequencies and their per-year multipliers.
const (
	FrequencyMonthly   = "monthly"
	FrequencyBiweekly  = "biweekly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnual    = "annual"
)

var frequencyMultipliers = map[string]int64{
	FrequencyMonthly:   12,
	FrequencyBiweekly:  26,
	FrequencyQuarterly: 4,
	FrequencyAnnual:    1,
}

// ContributionSchedule is a periodic contribution amount plus how often it
// is made. Projections work on the annualized amount.
type ContributionSchedule struct {
	Amount    decimal.Decimal `yaml:"amount"`
	Frequency string          `yaml:"frequency"`
}

// Annualized converts the schedule to an annual contribution.
func (cs ContributionSchedule) Annualized() decimal.Decimal {
	multiplier, ok := frequencyMultipliers[strings.ToLower(cs.Frequency)]
	if !ok {
		multiplier = frequencyMultipliers[FrequencyMonthly]
	}
	return cs.Amount.Mul(decimal.NewFromInt(multiplier))
}

// Plan is the savings plan document supplied by the user.
type Plan struct {
	CurrentAge     int                  `yaml:"current_age"`
	RetirementAge  int                  `yaml:"retirement_age"`
	CurrentSavings decimal.Decimal      `yaml:"current_savings"`
	Contribution   ContributionSchedule `yaml:"contribution"`

	// Investment option selection.
	Exchange           string          `yaml:"exchange"`
	SelectedOption     string          `yaml:"selected_option"`
	ManualAnnualReturn decimal.Decimal `yaml:"manual_annual_return"`

	// Inflation adjustment of the selected rate.
	AdjustForInflation bool            `yaml:"adjust_for_inflation"`
	InflationRate      decimal.Decimal `yaml:"inflation_rate"`

	// Data sources.
	CatalogPath   string `yaml:"catalog_path"`
	LookbackYears int    `yaml:"lookback_years"`
}

// HorizonYears is the number of whole years projected.
func (p *Plan) HorizonYears() int {
	return p.RetirementAge - p.CurrentAge
}

// ProjectionInput builds the engine input for the plan with the resolved
// annual rate.
func (p *Plan) ProjectionInput(rate decimal.Decimal) domain.ProjectionInput {
	return domain.ProjectionInput{
		StartingBalance:    p.CurrentSavings,
		AnnualContribution: p.Contribution.Annualized(),
		AnnualRate:         rate,
		HorizonYears:       p.HorizonYears(),
	}
}

// InputParser handles parsing of savings plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a savings plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if plan.LookbackYears == 0 {
		plan.LookbackYears = 5
	}
	if plan.Contribution.Frequency == "" {
		plan.Contribution.Frequency = FrequencyMonthly
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan. Invalid input is rejected here,
// before it can reach the projection engine.
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if plan.CurrentAge < 18 || plan.CurrentAge > 80 {
		return fmt.Errorf("current age must be between 18 and 80")
	}
	if plan.RetirementAge <= plan.CurrentAge {
		return fmt.Errorf("retirement age must be greater than current age")
	}
	if plan.RetirementAge > 100 {
		return fmt.Errorf("retirement age cannot exceed 100")
	}
	if plan.CurrentSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("current savings cannot be negative")
	}
	if plan.Contribution.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("contribution amount cannot be negative")
	}
	if _, ok := frequencyMultipliers[strings.ToLower(plan.Contribution.Frequency)]; !ok {
		return fmt.Errorf("contribution frequency must be monthly, biweekly, quarterly, or annual")
	}
	if plan.ManualAnnualReturn.LessThan(decimal.Zero) || plan.ManualAnnualReturn.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("manual annual return must be between 0 and 1")
	}
	if plan.InflationRate.LessThan(decimal.Zero) || plan.InflationRate.GreaterThan(decimal.NewFromFloat(0.10)) {
		return fmt.Errorf("inflation rate must be between 0 and 10%%")
	}
	if plan.LookbackYears < 1 {
		return fmt.Errorf("lookback years must be positive")
	}
	return nil
}

// CreateExamplePlan creates an example savings plan
func (ip *InputParser) CreateExamplePlan() *Plan {
	return &Plan{
		CurrentAge:         30,
		RetirementAge:      65,
		CurrentSavings:     decimal.NewFromInt(10000),
		Contribution:       ContributionSchedule{Amount: decimal.NewFromInt(500), Frequency: FrequencyMonthly},
		Exchange:           "NASDAQ",
		SelectedOption:     "S&P 500 Index Fund (ETF)",
		ManualAnnualReturn: decimal.NewFromFloat(0.05),
		AdjustForInflation: false,
		InflationRate:      decimal.NewFromFloat(0.02),
		LookbackYears:      5,
	}
}

// WriteExamplePlan writes the example plan to a YAML file.
func (ip *InputParser) WriteExamplePlan(filename string) error {
	data, err := yaml.Marshal(ip.CreateExamplePlan())
	if err != nil {
		return fmt.Errorf("failed to marshal example plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

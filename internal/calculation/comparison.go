package calculation

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/investhome/savings-projector/internal/domain"
)

// ComparisonRunner projects the same savings plan under several return
// assumptions and lines the results up on a shared year axis.
type ComparisonRunner struct {
	Engine    *ProjectionEngine
	Estimator *ReturnEstimator
	Logger    Logger
}

// NewComparisonRunner creates a comparison runner on top of an estimator.
func NewComparisonRunner(estimator *ReturnEstimator) *ComparisonRunner {
	return &ComparisonRunner{
		Engine:    NewProjectionEngine(),
		Estimator: estimator,
		Logger:    NopLogger{},
	}
}

// Compare evaluates each option independently against the shared input,
// varying only the annual rate. Output row order matches input option
// order. Manual options substitute manualRate instead of consulting the
// estimator. Symbol rates are resolved concurrently; the estimator's cache
// dedupes repeated symbols.
//
// The comparison path rolls balances forward with the
// GrowthThenContribution convention.
func (cr *ComparisonRunner) Compare(ctx context.Context, options []domain.InvestmentOption, shared domain.ProjectionInput, manualRate decimal.Decimal) *domain.Comparison {
	rates := make([]decimal.Decimal, len(options))
	warnings := make([]*domain.Warning, len(options))

	g, gctx := errgroup.WithContext(ctx)
	for i, option := range options {
		i, option := i, option
		switch option.Kind {
		case domain.OptionSymbol:
			g.Go(func() error {
				rates[i], warnings[i] = cr.Estimator.Estimate(gctx, option.Symbol)
				return nil
			})
		case domain.OptionFixedRate:
			rates[i] = option.Rate
		case domain.OptionManual:
			rates[i] = manualRate
		}
	}
	// Estimates never fail; Wait only synchronizes the fan-out.
	_ = g.Wait()

	comparison := &domain.Comparison{Input: shared, Rows: make([]domain.ComparisonRow, len(options))}
	for i, option := range options {
		input := shared
		input.AnnualRate = rates[i]
		input.Convention = domain.GrowthThenContribution

		trajectory := cr.Engine.Project(input)
		comparison.Rows[i] = domain.ComparisonRow{
			Label:        option.Label,
			AnnualReturn: rates[i],
			Metrics:      Summarize(input, trajectory),
			Balances:     trajectory.Balances(),
		}
		if warnings[i] != nil {
			comparison.Warnings = append(comparison.Warnings, *warnings[i])
		}
	}

	cr.Logger.Debugf("compared %d options over %d years", len(options), shared.HorizonYears)
	return comparison
}

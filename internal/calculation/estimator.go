package calculation

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/investhome/savings-projector/internal/domain"
)

const (
	// DefaultLookbackYears is the trailing window used to estimate a
	// symbol's annualized return.
	DefaultLookbackYears = 5
	// defaultFetchAttempts bounds retries of the external price fetch.
	defaultFetchAttempts = 3
	// defaultRetryInterval is the pause between fetch attempts.
	defaultRetryInterval = 200 * time.Millisecond
)

// DefaultAnnualReturn is substituted whenever a symbol's return cannot be
// estimated from historical data.
var DefaultAnnualReturn = decimal.NewFromFloat(0.07)

// QuoteProvider supplies trailing close-price history for a symbol. It is
// the only collaborator that may block or fail transiently.
type QuoteProvider interface {
	CloseHistory(ctx context.Context, symbol string, years int) (domain.PriceSeries, error)
}

type estimate struct {
	rate    decimal.Decimal
	warning *domain.Warning
}

// ReturnEstimator computes annualized compound growth rates from historical
// closing prices. Estimates are cached per (symbol, window) for the life of
// the estimator, concurrent calls for the same key share a single fetch,
// and transient fetch failures are retried a bounded number of times before
// falling back to DefaultAnnualReturn.
//
// Failure is never surfaced as an error: a defaulted estimate is
// indistinguishable from a real one except for the accompanying warning.
type ReturnEstimator struct {
	Provider      QuoteProvider
	Logger        Logger
	LookbackYears int
	DefaultRate   decimal.Decimal
	FetchAttempts int
	RetryInterval time.Duration

	mu    sync.Mutex
	cache map[string]estimate
	group singleflight.Group
}

// NewReturnEstimator creates an estimator over the given quote provider.
func NewReturnEstimator(provider QuoteProvider) *ReturnEstimator {
	return &ReturnEstimator{
		Provider:      provider,
		Logger:        NopLogger{},
		LookbackYears: DefaultLookbackYears,
		DefaultRate:   DefaultAnnualReturn,
		FetchAttempts: defaultFetchAttempts,
		RetryInterval: defaultRetryInterval,
		cache:         make(map[string]estimate),
	}
}

// SetLogger sets the logger used for warning emission. A nil logger falls
// back to the no-op logger, which silences expected-fallback noise.
func (re *ReturnEstimator) SetLogger(l Logger) {
	if l == nil {
		re.Logger = NopLogger{}
		return
	}
	re.Logger = l
}

// Estimate returns the annualized compound growth rate for symbol over the
// estimator's lookback window. The returned warning is non-nil exactly when
// the default rate was substituted.
func (re *ReturnEstimator) Estimate(ctx context.Context, symbol string) (decimal.Decimal, *domain.Warning) {
	key := fmt.Sprintf("%s|%dy", symbol, re.LookbackYears)

	re.mu.Lock()
	if cached, ok := re.cache[key]; ok {
		re.mu.Unlock()
		return cached.rate, cached.warning
	}
	re.mu.Unlock()

	// singleflight guarantees at most one in-flight fetch per key even
	// under concurrent estimator calls.
	result, _, _ := re.group.Do(key, func() (any, error) {
		est := re.estimate(ctx, symbol)
		re.mu.Lock()
		re.cache[key] = est
		re.mu.Unlock()
		return est, nil
	})

	est := result.(estimate)
	return est.rate, est.warning
}

func (re *ReturnEstimator) estimate(ctx context.Context, symbol string) estimate {
	series, err := re.fetchWithRetry(ctx, symbol)
	if err != nil {
		return re.fallback(symbol, "fetching historical data failed: %v", err)
	}

	series = series.DropInvalid()
	if len(series) < 2 {
		return re.fallback(symbol, "not enough data points to calculate returns")
	}

	elapsedYears := series.ElapsedYears()
	if elapsedYears < 1 {
		return re.fallback(symbol, "historical span is less than a year")
	}

	firstPrice, _ := series[0].Close.Float64()
	lastPrice, _ := series[len(series)-1].Close.Float64()
	annualReturn := math.Pow(lastPrice/firstPrice, 1/elapsedYears) - 1

	re.Logger.Debugf("estimated annual return for %s: %.4f over %.2f years", symbol, annualReturn, elapsedYears)
	return estimate{rate: decimal.NewFromFloat(annualReturn)}
}

func (re *ReturnEstimator) fetchWithRetry(ctx context.Context, symbol string) (domain.PriceSeries, error) {
	attempts := re.FetchAttempts
	if attempts < 1 {
		attempts = 1
	}

	var series domain.PriceSeries
	operation := func() error {
		fetched, err := re.Provider.CloseHistory(ctx, symbol, re.LookbackYears)
		if err != nil {
			return err
		}
		series = fetched
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(re.RetryInterval), uint64(attempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return series, nil
}

// fallback substitutes the default rate and reports the reason as a
// non-blocking warning. Callers keep projecting.
func (re *ReturnEstimator) fallback(symbol, format string, args ...any) estimate {
	warning := domain.Warningf(symbol, format+"; using default return rate", args...)
	re.Logger.Warnf("%s", warning.String())
	return estimate{rate: re.DefaultRate, warning: &warning}
}

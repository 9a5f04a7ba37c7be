package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/investhome/savings-projector/internal/domain"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooClient fetches daily closing prices from the Yahoo Finance chart
// API. It implements the calculation package's QuoteProvider interface.
type YahooClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewYahooClient creates a client with a bounded request timeout.
func NewYahooClient() *YahooClient {
	return &YahooClient{
		BaseURL:    defaultYahooBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// chartResponse mirrors the chart API payload. Missing observations come
// back as zero closes and are dropped by the caller.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// CloseHistory returns the trailing close-price series for symbol over the
// given number of years, ascending by date.
func (c *YahooClient) CloseHistory(ctx context.Context, symbol string, years int) (domain.PriceSeries, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if years < 1 {
		years = 1
	}

	endpoint := fmt.Sprintf("%s/%s?range=%dy&interval=1d", c.BaseURL, url.PathEscape(symbol), years)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", symbol, err)
	}
	req.Header.Set("User-Agent", "savings-projector/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote source returned status %d for %s", resp.StatusCode, symbol)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode chart response for %s: %w", symbol, err)
	}

	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("quote source error for %s: %s", symbol, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no historical data found for %s", symbol)
	}

	result := payload.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	series := make(domain.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		series = append(series, domain.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: decimal.NewFromFloat(closes[i]),
		})
	}
	return series, nil
}

package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChartServer(t *testing.T, handler http.HandlerFunc) *YahooClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &YahooClient{BaseURL: server.URL, HTTPClient: server.Client()}
}

func TestYahooCloseHistory(t *testing.T) {
	var gotPath, gotQuery string
	client := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{
			"chart": {
				"result": [{
					"timestamp": [1577923200, 1609545600, 1641081600],
					"indicators": {"quote": [{"close": [320.5, 370.1, 468.0]}]}
				}],
				"error": null
			}
		}`)
	})

	series, err := client.CloseHistory(context.Background(), "SPY", 5)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, "/SPY", gotPath)
	assert.Equal(t, "range=5y&interval=1d", gotQuery)
	assert.Equal(t, "2020-01-02", series[0].Date.Format("2006-01-02"))
	assert.True(t, series[0].Close.InexactFloat64() == 320.5)
	assert.True(t, series[1].Date.Before(series[2].Date))
}

func TestYahooCloseHistory_APIError(t *testing.T) {
	client := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`)
	})

	_, err := client.CloseHistory(context.Background(), "BOGUS", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No data found")
}

func TestYahooCloseHistory_HTTPStatus(t *testing.T) {
	client := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.CloseHistory(context.Background(), "SPY", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestYahooCloseHistory_EmptyResult(t *testing.T) {
	client := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": [], "error": null}}`)
	})

	_, err := client.CloseHistory(context.Background(), "SPY", 5)
	assert.Error(t, err)
}

func TestYahooCloseHistory_EmptySymbol(t *testing.T) {
	client := NewYahooClient()
	_, err := client.CloseHistory(context.Background(), "", 5)
	assert.Error(t, err)
}

package quote

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePriceFile(t *testing.T, dir, symbol, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, symbol+".csv"), []byte(content), 0644))
}

func TestCSVDirProvider_CloseHistory(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "SPY", "Date,Close\n2020-01-02,320.50\n2022-06-15,380.00\n2024-01-02,470.25\n")

	series, err := NewCSVDirProvider(dir).CloseHistory(context.Background(), "spy", 10)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, "2020-01-02", series[0].Date.Format("2006-01-02"))
	assert.True(t, series[0].Close.Equal(decimal.RequireFromString("320.50")))
	assert.True(t, series[2].Close.Equal(decimal.RequireFromString("470.25")))
}

func TestCSVDirProvider_TrimsToWindow(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "SPY", "Date,Close\n"+
		"2015-01-02,200.00\n"+
		"2021-06-01,420.00\n"+
		"2024-01-02,470.00\n")

	series, err := NewCSVDirProvider(dir).CloseHistory(context.Background(), "SPY", 5)
	require.NoError(t, err)
	require.Len(t, series, 2, "points before the five-year cutoff must be dropped")
	assert.Equal(t, "2021-06-01", series[0].Date.Format("2006-01-02"))
}

func TestCSVDirProvider_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "QQQ", "Date,Close\n"+
		"not-a-date,100.00\n"+
		"2023-05-01,not-a-price\n"+
		"2023-05-02\n"+
		"2023-05-03,355.10\n")

	series, err := NewCSVDirProvider(dir).CloseHistory(context.Background(), "QQQ", 5)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.True(t, series[0].Close.Equal(decimal.RequireFromString("355.10")))
}

func TestCSVDirProvider_MissingFile(t *testing.T) {
	_, err := NewCSVDirProvider(t.TempDir()).CloseHistory(context.Background(), "SPY", 5)
	assert.Error(t, err)
}

func TestCSVDirProvider_EmptySymbol(t *testing.T) {
	_, err := NewCSVDirProvider(t.TempDir()).CloseHistory(context.Background(), "", 5)
	assert.Error(t, err)
}

func TestCSVDirProvider_NoValidRows(t *testing.T) {
	dir := t.TempDir()
	writePriceFile(t, dir, "SPY", "Date,Close\njunk,junk\n")

	_, err := NewCSVDirProvider(dir).CloseHistory(context.Background(), "SPY", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid price points")
}

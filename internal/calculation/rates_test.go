package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAdjustForInflation(t *testing.T) {
	adjusted := AdjustForInflation(decimal.NewFromFloat(0.07), decimal.NewFromFloat(0.02))
	if !adjusted.Equal(decimal.NewFromFloat(0.05)) {
		t.Fatalf("expected 0.05, got %s", adjusted.String())
	}

	// Inflation above the rate yields a negative real rate.
	negative := AdjustForInflation(decimal.NewFromFloat(0.01), decimal.NewFromFloat(0.03))
	if !negative.Equal(decimal.NewFromFloat(-0.02)) {
		t.Fatalf("expected -0.02, got %s", negative.String())
	}
}

func TestCapGrowth(t *testing.T) {
	min := decimal.NewFromFloat(0.02)
	max := decimal.NewFromFloat(0.20)

	if got := CapGrowth(decimal.NewFromFloat(0.50), min, max); !got.Equal(max) {
		t.Fatalf("expected cap at max, got %s", got.String())
	}
	if got := CapGrowth(decimal.NewFromFloat(-0.10), min, max); !got.Equal(min) {
		t.Fatalf("expected cap at min, got %s", got.String())
	}
	if got := CapGrowth(decimal.NewFromFloat(0.07), min, max); !got.Equal(decimal.NewFromFloat(0.07)) {
		t.Fatalf("expected passthrough, got %s", got.String())
	}
}

func TestCapGrowthDefault(t *testing.T) {
	if got := CapGrowthDefault(decimal.NewFromFloat(0.35)); !got.Equal(DefaultMaxGrowthRate) {
		t.Fatalf("expected default max cap, got %s", got.String())
	}
	if got := CapGrowthDefault(decimal.NewFromFloat(0.001)); !got.Equal(DefaultMinGrowthRate) {
		t.Fatalf("expected default min cap, got %s", got.String())
	}
}

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestFlags(t *testing.T) {
	t.Helper()
	prevPlan, prevQuotes := planFile, quoteDir
	planFile = "../../test/testdata/example_plan.yaml"
	quoteDir = "../../test/testdata/prices"
	t.Cleanup(func() { planFile, quoteDir = prevPlan, prevQuotes })
}

// compare without --options must still attach a comparison, defaulting to
// the plan's selected option.
func TestBuildReport_CompareDefaultsToSelectedOption(t *testing.T) {
	withTestFlags(t)

	report, err := buildReport(context.Background(), true, nil)
	require.NoError(t, err)
	require.NotNil(t, report.Comparison)
	require.Len(t, report.Comparison.Rows, 1)
	assert.Equal(t, "S&P 500 Index Fund (ETF)", report.Comparison.Rows[0].Label)
	assert.True(t, report.Comparison.Rows[0].AnnualReturn.Equal(report.Metrics.AnnualReturnUsed))
}

func TestBuildReport_ProjectHasNoComparison(t *testing.T) {
	withTestFlags(t)

	report, err := buildReport(context.Background(), false, nil)
	require.NoError(t, err)
	assert.Nil(t, report.Comparison)
	require.Len(t, report.Trajectory, 36)
}

func TestBuildReport_ExplicitOptions(t *testing.T) {
	withTestFlags(t)

	report, err := buildReport(context.Background(), true, []string{"Government Bond (10-year)", "Custom"})
	require.NoError(t, err)
	require.NotNil(t, report.Comparison)
	require.Len(t, report.Comparison.Rows, 2)
	assert.Equal(t, "Government Bond (10-year)", report.Comparison.Rows[0].Label)
	assert.Equal(t, "Custom", report.Comparison.Rows[1].Label)
}

func TestBuildReport_UnknownOption(t *testing.T) {
	withTestFlags(t)

	_, err := buildReport(context.Background(), true, []string{"No Such Fund"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown investment option")
}

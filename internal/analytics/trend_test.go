package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
)

func TestEstimateTrend(t *testing.T) {
	assert.Equal(t, TrendRising, EstimateTrend([]float64{100, 200, 300, 400, 500}))
	assert.Equal(t, TrendFalling, EstimateTrend([]float64{500, 400, 300, 200, 100}))
	assert.Equal(t, TrendStable, EstimateTrend([]float64{250, 250, 250, 250}))
}

func TestEstimateTrend_ShortSeriesIsStable(t *testing.T) {
	assert.Equal(t, TrendStable, EstimateTrend(nil))
	assert.Equal(t, TrendStable, EstimateTrend([]float64{100}))
	assert.Equal(t, TrendStable, EstimateTrend([]float64{100, 9000}))
}

func TestEstimateTrend_NoiseBelowThresholdIsStable(t *testing.T) {
	assert.Equal(t, TrendStable, EstimateTrend([]float64{100, 105, 110, 105, 100}))
}

func TestEstimateTrend_BoundarySlopeJustAboveThreshold(t *testing.T) {
	// Slope 0.5 against a population-deviation threshold of ~0.450; a
	// sample-deviation threshold (~0.551) would wrongly report Stable.
	assert.Equal(t, TrendRising, EstimateTrend([]float64{0, 10, 1}))
	assert.Equal(t, TrendFalling, EstimateTrend([]float64{1, 10, 0}))
}

func monthTxn(year int, month time.Month, day int, value, balance string) model.Transaction {
	v := decimal.RequireFromString(value)
	return model.Transaction{
		Date:      time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Value:     v,
		Balance:   decimal.RequireFromString(balance),
		YearMonth: time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01"),
	}
}

func TestAttachMovingAverages(t *testing.T) {
	txns := []model.Transaction{
		monthTxn(2024, time.January, 10, "100.00", "100.00"),
		monthTxn(2024, time.February, 10, "100.00", "200.00"),
		monthTxn(2024, time.March, 10, "100.00", "300.00"),
		monthTxn(2024, time.April, 10, "100.00", "400.00"),
	}

	out := AttachMovingAverages(txns, 3)
	require.Len(t, out, 4)

	// Trailing mean over up to three months of closing balances.
	assert.Equal(t, "100.00", out[0].MA3Balance.StringFixed(2))
	assert.Equal(t, "150.00", out[1].MA3Balance.StringFixed(2))
	assert.Equal(t, "200.00", out[2].MA3Balance.StringFixed(2))
	assert.Equal(t, "300.00", out[3].MA3Balance.StringFixed(2))

	for _, txn := range out {
		assert.Equal(t, "100.00", txn.MA3Flow.StringFixed(2))
		assert.Equal(t, TrendRising, txn.Trend)
	}
}

func TestAttachMovingAverages_LastBalanceAndSummedFlowPerMonth(t *testing.T) {
	txns := []model.Transaction{
		monthTxn(2024, time.January, 5, "40.00", "40.00"),
		monthTxn(2024, time.January, 20, "60.00", "100.00"),
		monthTxn(2024, time.February, 5, "-20.00", "80.00"),
	}

	out := AttachMovingAverages(txns, 3)
	require.Len(t, out, 3)

	// January aggregates to closing balance 100 and net flow 100; February
	// to balance 80 and flow -20.
	assert.Equal(t, "100.00", out[0].MA3Balance.StringFixed(2))
	assert.Equal(t, "90.00", out[2].MA3Balance.StringFixed(2))
	assert.Equal(t, "100.00", out[1].MA3Flow.StringFixed(2))
	assert.Equal(t, "40.00", out[2].MA3Flow.StringFixed(2))

	// Two months only: trend is Stable by the short-series rule.
	assert.Equal(t, TrendStable, out[0].Trend)
}

func TestAttachMovingAverages_DoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{monthTxn(2024, time.January, 10, "10.00", "10.00")}
	_ = AttachMovingAverages(txns, 3)
	assert.Empty(t, txns[0].Trend)
	assert.True(t, txns[0].MA3Balance.IsZero())
}

func TestAttachMovingAverages_Empty(t *testing.T) {
	assert.Empty(t, AttachMovingAverages(nil, 3))
}

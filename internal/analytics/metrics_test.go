package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/extrato-dev/extrato/internal/model"
)

// metricTxn builds a decorated ledger entry with running balance.
func metricTxn(year int, month time.Month, day int, value, balance string) model.Transaction {
	v := decimal.RequireFromString(value)
	t := model.Transaction{
		Date:      time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Value:     v,
		Balance:   decimal.RequireFromString(balance),
		YearMonth: time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01"),
	}
	if v.Sign() >= 0 {
		t.CreditAbs = v
	} else {
		t.DebitAbs = v.Abs()
	}
	return t
}

func TestCalculate(t *testing.T) {
	txns := []model.Transaction{
		metricTxn(2024, time.January, 5, "1000.00", "1000.00"),
		metricTxn(2024, time.January, 20, "-400.00", "600.00"),
		metricTxn(2024, time.February, 5, "1000.00", "1600.00"),
		metricTxn(2024, time.February, 20, "-600.00", "1000.00"),
	}

	m := Calculate(txns)

	// Credits 2000, debits 1000, closing balance 1000.
	assert.InDelta(t, 50.0, m.SavingsRate, 1e-9)
	assert.InDelta(t, 500.0, m.BurnRate, 1e-9) // monthly debits 400 and 600
	assert.InDelta(t, 2.0, m.RunwayMonths, 1e-9)
	// Span Jan 5 .. Feb 20 = 47 days; 1000 debits / 47 days ~ 21.28/day.
	assert.InDelta(t, 47.0, m.CashDays, 1e-9)
	assert.InDelta(t, 2.0, m.IncomeExpenseRatio, 1e-9)
	// Monthly net flows 600 and 400: std 141.42 over mean 500.
	assert.InDelta(t, 28.3, m.Volatility, 1e-9)
}

func TestCalculate_NoDebitsHitsSentinels(t *testing.T) {
	txns := []model.Transaction{
		metricTxn(2024, time.January, 5, "1000.00", "1000.00"),
		metricTxn(2024, time.February, 5, "500.00", "1500.00"),
	}

	m := Calculate(txns)
	assert.InDelta(t, 100.0, m.SavingsRate, 1e-9)
	assert.InDelta(t, 0.0, m.BurnRate, 1e-9)
	assert.InDelta(t, 999.0, m.RunwayMonths, 1e-9)
	assert.InDelta(t, 999.0, m.CashDays, 1e-9)
	assert.InDelta(t, 0.0, m.IncomeExpenseRatio, 1e-9)
}

func TestCalculate_NoCredits(t *testing.T) {
	txns := []model.Transaction{
		metricTxn(2024, time.January, 5, "-100.00", "-100.00"),
		metricTxn(2024, time.January, 20, "-100.00", "-200.00"),
	}

	m := Calculate(txns)
	assert.InDelta(t, 0.0, m.SavingsRate, 1e-9)
	assert.InDelta(t, 200.0, m.BurnRate, 1e-9)
	assert.InDelta(t, 0.0, m.IncomeExpenseRatio, 1e-9)
}

func TestCalculate_SingleMonthHasNoVolatility(t *testing.T) {
	txns := []model.Transaction{
		metricTxn(2024, time.January, 5, "1000.00", "1000.00"),
		metricTxn(2024, time.January, 20, "-400.00", "600.00"),
	}

	m := Calculate(txns)
	assert.InDelta(t, 0.0, m.Volatility, 1e-9)
}

func TestCalculate_Empty(t *testing.T) {
	assert.Equal(t, Metrics{}, Calculate(nil))
}

package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/finance-engine/finance"
)

// =============================================================================
// SHARED TEST FIXTURES
// =============================================================================

func date(year int, month time.Month, day int) finance.TimePoint {
	return finance.NewTimePoint(year, month, day)
}

func income(id string, d finance.TimePoint, amount int64, cat finance.IncomeCategory) finance.Transaction {
	return finance.Transaction{
		ID:             finance.TransactionID(id),
		Date:           d,
		Type:           finance.TxIncome,
		Amount:         decimal.NewFromInt(amount),
		IncomeCategory: cat,
	}
}

func expense(id string, d finance.TimePoint, amount int64, cat finance.ExpenseCategory, class finance.Classification) finance.Transaction {
	return finance.Transaction{
		ID:              finance.TransactionID(id),
		Date:            d,
		Type:            finance.TxExpense,
		Amount:          decimal.NewFromInt(amount),
		ExpenseCategory: cat,
		Classification:  class,
	}
}

func mustPeriod(t *testing.T, start, end finance.TimePoint) finance.Period {
	t.Helper()
	p, err := finance.NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

// assertDecimal compares by value, not representation: 5 and 5.0 are equal.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	assert.True(t, got.Equal(expected), "%s: want %s, got %s", msg, expected, got)
}

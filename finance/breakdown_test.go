package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/finance-engine/finance"
)

// =============================================================================
// CATEGORY BREAKDOWN TESTS
// =============================================================================

func TestBuildExpenseBreakdown_RankedPercentages(t *testing.T) {
	// GIVEN: Expenses of 600 payroll, 300 software, 100 marketing
	// WHEN: The breakdown is built
	// THEN: Entries rank by amount with percentages of the expense total

	period := mustPeriod(t, date(2025, time.March, 1), date(2025, time.March, 31))
	txs := []finance.Transaction{
		expense("tx-1", date(2025, time.March, 3), 100, finance.ExpenseMarketing, finance.ClassificationVariable),
		expense("tx-2", date(2025, time.March, 5), 600, finance.ExpensePayroll, finance.ClassificationFixed),
		expense("tx-3", date(2025, time.March, 7), 300, finance.ExpenseSoftware, finance.ClassificationFixed),
	}

	entries := finance.BuildExpenseBreakdown(txs, period)

	require.Len(t, entries, 3)
	assert.Equal(t, "payroll", entries[0].Category)
	assert.Equal(t, 1, entries[0].Rank)
	assertDecimal(t, "60", entries[0].Percentage, "payroll share")
	assert.Equal(t, "software", entries[1].Category)
	assertDecimal(t, "30", entries[1].Percentage, "software share")
	assert.Equal(t, "marketing", entries[2].Category)
	assert.Equal(t, 3, entries[2].Rank)
	assertDecimal(t, "10", entries[2].Percentage, "marketing share")
}

func TestBuildBreakdown_DenominatorIsPerType(t *testing.T) {
	// GIVEN: Income and expenses in the same period
	// WHEN: Both breakdowns are built
	// THEN: Each side's percentages use its own total, never the grand total

	period := mustPeriod(t, date(2025, time.April, 1), date(2025, time.April, 30))
	txs := []finance.Transaction{
		income("tx-1", date(2025, time.April, 2), 1000, finance.IncomeMRR),
		income("tx-2", date(2025, time.April, 3), 1000, finance.IncomeServices),
		expense("tx-3", date(2025, time.April, 4), 500, finance.ExpensePayroll, finance.ClassificationFixed),
	}

	incomeEntries := finance.BuildIncomeBreakdown(txs, period)
	expenseEntries := finance.BuildExpenseBreakdown(txs, period)

	require.Len(t, incomeEntries, 2)
	assertDecimal(t, "50", incomeEntries[0].Percentage, "income share")
	require.Len(t, expenseEntries, 1)
	assertDecimal(t, "100", expenseEntries[0].Percentage, "expense share")
}

func TestBuildBreakdown_OmitsZeroAmounts(t *testing.T) {
	// GIVEN: A zero-amount transaction in an otherwise normal period
	// WHEN: The breakdown is built
	// THEN: The zero category does not appear

	period := mustPeriod(t, date(2025, time.May, 1), date(2025, time.May, 31))
	txs := []finance.Transaction{
		expense("tx-1", date(2025, time.May, 2), 0, finance.ExpenseLegal, finance.ClassificationFixed),
		expense("tx-2", date(2025, time.May, 3), 200, finance.ExpenseOffice, finance.ClassificationFixed),
	}

	entries := finance.BuildExpenseBreakdown(txs, period)

	require.Len(t, entries, 1)
	assert.Equal(t, "office", entries[0].Category)
}

func TestBuildBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	// GIVEN: Two categories with identical totals
	// WHEN: The breakdown is built
	// THEN: The category seen first in the snapshot keeps the earlier rank

	period := mustPeriod(t, date(2025, time.May, 1), date(2025, time.May, 31))
	txs := []finance.Transaction{
		expense("tx-1", date(2025, time.May, 2), 500, finance.ExpenseSoftware, finance.ClassificationFixed),
		expense("tx-2", date(2025, time.May, 3), 500, finance.ExpenseMarketing, finance.ClassificationVariable),
	}

	entries := finance.BuildExpenseBreakdown(txs, period)

	require.Len(t, entries, 2)
	assert.Equal(t, "software", entries[0].Category)
	assert.Equal(t, "marketing", entries[1].Category)
}

func TestBuildBreakdown_RestrictedToPeriod(t *testing.T) {
	// GIVEN: An expense outside the requested window
	// WHEN: The breakdown is built
	// THEN: It is excluded from both amount and percentage

	period := mustPeriod(t, date(2025, time.June, 1), date(2025, time.June, 30))
	txs := []finance.Transaction{
		expense("tx-1", date(2025, time.May, 31), 9999, finance.ExpensePayroll, finance.ClassificationFixed),
		expense("tx-2", date(2025, time.June, 1), 100, finance.ExpenseSoftware, finance.ClassificationFixed),
	}

	entries := finance.BuildExpenseBreakdown(txs, period)

	require.Len(t, entries, 1)
	assert.Equal(t, "software", entries[0].Category)
	assertDecimal(t, "100", entries[0].Percentage, "share")
}

func TestTopExpenses_CapsAtN(t *testing.T) {
	// GIVEN: Six distinct expense categories
	// WHEN: The top five are requested
	// THEN: Only the five largest remain, in rank order

	period := mustPeriod(t, date(2025, time.July, 1), date(2025, time.July, 31))
	txs := []finance.Transaction{
		expense("tx-1", date(2025, time.July, 1), 600, finance.ExpensePayroll, finance.ClassificationFixed),
		expense("tx-2", date(2025, time.July, 2), 500, finance.ExpenseSoftware, finance.ClassificationFixed),
		expense("tx-3", date(2025, time.July, 3), 400, finance.ExpenseMarketing, finance.ClassificationVariable),
		expense("tx-4", date(2025, time.July, 4), 300, finance.ExpenseOffice, finance.ClassificationFixed),
		expense("tx-5", date(2025, time.July, 5), 200, finance.ExpenseLegal, finance.ClassificationFixed),
		expense("tx-6", date(2025, time.July, 6), 100, finance.ExpenseOther, finance.ClassificationVariable),
	}

	breakdown := finance.BuildExpenseBreakdown(txs, period)
	top := finance.TopExpenses(breakdown, 5)

	require.Len(t, top, 5)
	assert.Equal(t, "payroll", top[0].Category)
	assert.Equal(t, "legal", top[4].Category)
}

func TestTopExpenses_ShorterListReturnedWhole(t *testing.T) {
	top := finance.TopExpenses([]finance.BreakdownEntry{{Category: "payroll"}}, 5)
	assert.Len(t, top, 1)
}

package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pulse/finance-engine/finance"
)

// =============================================================================
// PERIOD REDUCER TESTS
// =============================================================================

func TestReducePeriod_ActivityCorrectedAverage(t *testing.T) {
	// GIVEN: Two consecutive months, 500 of expenses in the first, nothing in
	//        the second
	// WHEN: The period is reduced
	// THEN: Averages divide by the one active month, not the calendar span

	period := mustPeriod(t, date(2025, time.January, 1), date(2025, time.February, 28))
	txs := []finance.Transaction{
		expense("tx-1", date(2025, time.January, 15), 500, finance.ExpenseSoftware, finance.ClassificationFixed),
	}

	agg := finance.AggregatePeriod(txs, period)

	assert.Equal(t, 1, agg.MonthsWithActivity)
	assertDecimal(t, "500", agg.AvgMonthlyExpenses, "avg monthly expenses")
	assertDecimal(t, "500", agg.AvgMonthlyFixed(), "avg monthly fixed")
}

func TestReducePeriod_EmptyWindow_DivisorFlooredAtOne(t *testing.T) {
	// GIVEN: A two-month window with no transactions
	// WHEN: The period is reduced
	// THEN: The divisor floors at one and every average resolves to zero

	period := mustPeriod(t, date(2025, time.June, 1), date(2025, time.July, 31))

	agg := finance.AggregatePeriod(nil, period)

	assert.Equal(t, 1, agg.MonthsWithActivity)
	assertDecimal(t, "0", agg.AvgMonthlyIncome, "avg monthly income")
	assertDecimal(t, "0", agg.AvgMonthlyExpenses, "avg monthly expenses")
	assertDecimal(t, "0", agg.AvgMonthlyBurn, "avg monthly burn")
}

func TestReducePeriod_SumsAndAverages(t *testing.T) {
	// GIVEN: Two active months
	// WHEN: The period is reduced
	// THEN: Sums cover both months and averages divide by two

	period := mustPeriod(t, date(2025, time.January, 1), date(2025, time.February, 28))
	txs := []finance.Transaction{
		income("tx-1", date(2025, time.January, 5), 1000, finance.IncomeMRR),
		expense("tx-2", date(2025, time.January, 20), 400, finance.ExpensePayroll, finance.ClassificationFixed),
		income("tx-3", date(2025, time.February, 5), 2000, finance.IncomeMRR),
		expense("tx-4", date(2025, time.February, 20), 600, finance.ExpenseMarketing, finance.ClassificationVariable),
	}

	agg := finance.AggregatePeriod(txs, period)

	assert.Equal(t, 2, agg.MonthsWithActivity)
	assertDecimal(t, "3000", agg.TotalIncome, "total income")
	assertDecimal(t, "1000", agg.TotalExpenses, "total expenses")
	assertDecimal(t, "400", agg.FixedExpenses, "fixed expenses")
	assertDecimal(t, "600", agg.VariableExpenses, "variable expenses")
	assertDecimal(t, "1500", agg.AvgMonthlyIncome, "avg monthly income")
	assertDecimal(t, "500", agg.AvgMonthlyExpenses, "avg monthly expenses")
	assertDecimal(t, "200", agg.AvgMonthlyFixed(), "avg monthly fixed")
}

func TestReducePeriod_AvgIncomeIsOperational(t *testing.T) {
	// GIVEN: A month with operational income and a partner contribution
	// WHEN: The period is reduced
	// THEN: The monthly income average excludes the contribution

	period := mustPeriod(t, date(2025, time.March, 1), date(2025, time.March, 31))
	txs := []finance.Transaction{
		income("tx-1", date(2025, time.March, 3), 1000, finance.IncomeServices),
		income("tx-2", date(2025, time.March, 4), 9000, finance.IncomePartnerContribution),
		expense("tx-3", date(2025, time.March, 5), 100, finance.ExpenseOther, finance.ClassificationVariable),
	}

	agg := finance.AggregatePeriod(txs, period)

	assertDecimal(t, "10000", agg.TotalIncome, "total income")
	assertDecimal(t, "1000", agg.AvgMonthlyIncome, "avg monthly income")
}

func TestReducePeriod_IgnoresTransactionsOutsidePeriod(t *testing.T) {
	// GIVEN: Transactions before, inside, and after the window
	// WHEN: The period is reduced
	// THEN: Only the in-window transaction counts

	period := mustPeriod(t, date(2025, time.May, 1), date(2025, time.May, 31))
	txs := []finance.Transaction{
		income("tx-1", date(2025, time.April, 30), 100, finance.IncomeMRR),
		income("tx-2", date(2025, time.May, 10), 250, finance.IncomeMRR),
		income("tx-3", date(2025, time.June, 1), 100, finance.IncomeMRR),
	}

	agg := finance.AggregatePeriod(txs, period)

	assertDecimal(t, "250", agg.TotalIncome, "total income")
}

package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/finance-engine/finance"
)

// =============================================================================
// MONTHLY BUCKETIZER TESTS
// =============================================================================

func TestMonthlyAggregate_IncomeAndFixedExpense(t *testing.T) {
	// GIVEN: One month with 1000 of MRR income and 400 of fixed payroll
	// WHEN: The month is reduced
	// THEN: Gross profit is 600 and burn is zero

	txs := []finance.Transaction{
		income("tx-1", date(2025, time.March, 10), 1000, finance.IncomeMRR),
		expense("tx-2", date(2025, time.March, 15), 400, finance.ExpensePayroll, finance.ClassificationFixed),
	}

	agg := finance.MonthlyAggregateFor(txs, 2025, time.March)

	assertDecimal(t, "1000", agg.TotalIncome, "total income")
	assertDecimal(t, "1000", agg.OperationalIncome, "operational income")
	assertDecimal(t, "1000", agg.MRRIncome, "mrr income")
	assertDecimal(t, "400", agg.TotalExpenses, "total expenses")
	assertDecimal(t, "400", agg.FixedExpenses, "fixed expenses")
	assertDecimal(t, "400", agg.Payroll, "payroll")
	assertDecimal(t, "600", agg.GrossProfit, "gross profit")
	assertDecimal(t, "600", agg.NetProfit, "net profit")
	assertDecimal(t, "0", agg.Burn, "burn")
	assert.True(t, agg.HasActivity())
}

func TestMonthlyAggregate_EmptyMonth_AllZero(t *testing.T) {
	// GIVEN: No transactions at all
	// WHEN: A month is reduced
	// THEN: Every field is zero and the month has no activity

	agg := finance.MonthlyAggregateFor(nil, 2025, time.January)

	assertDecimal(t, "0", agg.TotalIncome, "total income")
	assertDecimal(t, "0", agg.TotalExpenses, "total expenses")
	assertDecimal(t, "0", agg.GrossProfit, "gross profit")
	assertDecimal(t, "0", agg.Burn, "burn")
	assert.False(t, agg.HasActivity())
	assert.Equal(t, finance.MonthKey{Year: 2025, Month: time.January}, agg.Key())
}

func TestMonthlyAggregate_PartnerContribution_ExcludedFromOperational(t *testing.T) {
	// GIVEN: The founders wired in 50000 but nothing was sold; 2000 was spent
	// WHEN: The month is reduced
	// THEN: Operational income is zero and burn reflects the full 2000

	txs := []finance.Transaction{
		income("tx-1", date(2025, time.April, 1), 50000, finance.IncomePartnerContribution),
		expense("tx-2", date(2025, time.April, 20), 2000, finance.ExpenseSoftware, finance.ClassificationFixed),
	}

	agg := finance.MonthlyAggregateFor(txs, 2025, time.April)

	assertDecimal(t, "50000", agg.TotalIncome, "total income")
	assertDecimal(t, "0", agg.OperationalIncome, "operational income")
	assertDecimal(t, "50000", agg.PartnerContributions, "partner contributions")
	assertDecimal(t, "-2000", agg.GrossProfit, "gross profit")
	assertDecimal(t, "48000", agg.NetProfit, "net profit")
	assertDecimal(t, "2000", agg.Burn, "burn")
}

func TestMonthlyAggregate_BusinessProfit_ExcludesConstitution(t *testing.T) {
	// GIVEN: A month where 800 of the 1000 expenses is the one-time
	//        incorporation cost
	// WHEN: The month is reduced
	// THEN: Business profit excludes the constitution cost; gross profit keeps
	//       the literal accounting figure

	txs := []finance.Transaction{
		income("tx-1", date(2025, time.February, 5), 1000, finance.IncomeServices),
		expense("tx-2", date(2025, time.February, 6), 800, finance.ExpenseConstitution, finance.ClassificationFixed),
		expense("tx-3", date(2025, time.February, 7), 200, finance.ExpenseSoftware, finance.ClassificationFixed),
	}

	agg := finance.MonthlyAggregateFor(txs, 2025, time.February)

	assertDecimal(t, "800", agg.ConstitutionExpenses, "constitution expenses")
	assertDecimal(t, "0", agg.GrossProfit, "gross profit")
	assertDecimal(t, "800", agg.BusinessProfit, "business profit")
}

func TestMonthlyAggregate_ClassificationSplit(t *testing.T) {
	// GIVEN: One fixed and one variable expense in the same month
	// WHEN: The month is reduced
	// THEN: The fixed/variable split matches the classifications

	txs := []finance.Transaction{
		expense("tx-1", date(2025, time.May, 1), 300, finance.ExpenseOffice, finance.ClassificationFixed),
		expense("tx-2", date(2025, time.May, 2), 150, finance.ExpenseMarketing, finance.ClassificationVariable),
	}

	agg := finance.MonthlyAggregateFor(txs, 2025, time.May)

	assertDecimal(t, "450", agg.TotalExpenses, "total expenses")
	assertDecimal(t, "300", agg.FixedExpenses, "fixed expenses")
	assertDecimal(t, "150", agg.VariableExpenses, "variable expenses")
}

func TestMonthlyAggregate_IgnoresOtherMonths(t *testing.T) {
	// GIVEN: Transactions spread over March and April
	// WHEN: Only March is reduced
	// THEN: April's transactions do not leak in

	txs := []finance.Transaction{
		income("tx-1", date(2025, time.March, 31), 100, finance.IncomeOneTime),
		income("tx-2", date(2025, time.April, 1), 900, finance.IncomeOneTime),
	}

	agg := finance.MonthlyAggregateFor(txs, 2025, time.March)

	assertDecimal(t, "100", agg.TotalIncome, "total income")
}

func TestMonthlyAggregates_SeriesIncludesEmptyMonths(t *testing.T) {
	// GIVEN: A three-month period with activity only in the middle month
	// WHEN: The per-month series is built
	// THEN: All three months are present, chronologically, zeros included

	period := mustPeriod(t, date(2025, time.January, 1), date(2025, time.March, 31))
	txs := []finance.Transaction{
		income("tx-1", date(2025, time.February, 14), 500, finance.IncomeMRR),
	}

	series := finance.MonthlyAggregates(txs, period)

	require.Len(t, series, 3)
	assert.Equal(t, time.January, series[0].Month)
	assert.Equal(t, time.February, series[1].Month)
	assert.Equal(t, time.March, series[2].Month)
	assert.False(t, series[0].HasActivity())
	assertDecimal(t, "500", series[1].TotalIncome, "february income")
	assert.False(t, series[2].HasActivity())
}

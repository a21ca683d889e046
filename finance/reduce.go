/*
reduce.go - Period reduction with activity-corrected averages

PURPOSE:
  Folds a sequence of MonthlyAggregates covering an arbitrary date range into
  a single PeriodAggregate: sums of every additive field plus period-level
  monthly averages.

KEY INSIGHT:
  Averages divide by the count of months that had ANY recorded activity, not
  by the raw calendar span. A range that starts before the business had
  transactions would otherwise dilute every average toward zero. Two months
  where only the first has 500 of expenses average to 500, not 250.

  monthsWithActivity = count(months where totalExpenses > 0
                             OR operationalIncome > 0), floored at 1

SEE ALSO:
  - monthly.go: The per-month buckets being folded
  - compare.go: Compares two PeriodAggregates via percentage deltas
  - breakeven.go: Uses the activity-corrected fixed-cost average
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PERIOD AGGREGATE - Arbitrary date range reduced to sums and averages
// =============================================================================

type PeriodAggregate struct {
	Period Period

	// Sums of all monthly fields across the range
	TotalIncome          decimal.Decimal
	OperationalIncome    decimal.Decimal
	PartnerContributions decimal.Decimal
	MRRIncome            decimal.Decimal
	TotalExpenses        decimal.Decimal
	FixedExpenses        decimal.Decimal
	VariableExpenses     decimal.Decimal
	Payroll              decimal.Decimal
	ConstitutionExpenses decimal.Decimal
	GrossProfit          decimal.Decimal
	NetProfit            decimal.Decimal
	BusinessProfit       decimal.Decimal
	Burn                 decimal.Decimal

	// MonthsWithActivity counts months with nonzero expenses or operational
	// income, floored at 1 to guard every division below.
	MonthsWithActivity int

	// Averages divide by MonthsWithActivity, not the calendar month count.
	AvgMonthlyIncome   decimal.Decimal
	AvgMonthlyExpenses decimal.Decimal
	AvgMonthlyBurn     decimal.Decimal
}

// AvgMonthlyFixed returns the activity-corrected monthly fixed-cost average.
func (p PeriodAggregate) AvgMonthlyFixed() decimal.Decimal {
	return p.FixedExpenses.Div(decimal.NewFromInt(int64(p.MonthsWithActivity)))
}

// =============================================================================
// PERIOD REDUCER - Immutable fold over monthly aggregates
// =============================================================================

// ReducePeriod folds monthly aggregates covering a contiguous month range
// into a single PeriodAggregate. The input is expected to come from
// MonthlyAggregates, which includes zero-activity months.
func ReducePeriod(period Period, months []MonthlyAggregate) PeriodAggregate {
	agg := PeriodAggregate{
		Period:               period,
		TotalIncome:          decimal.Zero,
		OperationalIncome:    decimal.Zero,
		PartnerContributions: decimal.Zero,
		MRRIncome:            decimal.Zero,
		TotalExpenses:        decimal.Zero,
		FixedExpenses:        decimal.Zero,
		VariableExpenses:     decimal.Zero,
		Payroll:              decimal.Zero,
		ConstitutionExpenses: decimal.Zero,
		GrossProfit:          decimal.Zero,
		NetProfit:            decimal.Zero,
		BusinessProfit:       decimal.Zero,
		Burn:                 decimal.Zero,
	}

	active := 0
	for _, m := range months {
		agg.TotalIncome = agg.TotalIncome.Add(m.TotalIncome)
		agg.OperationalIncome = agg.OperationalIncome.Add(m.OperationalIncome)
		agg.PartnerContributions = agg.PartnerContributions.Add(m.PartnerContributions)
		agg.MRRIncome = agg.MRRIncome.Add(m.MRRIncome)
		agg.TotalExpenses = agg.TotalExpenses.Add(m.TotalExpenses)
		agg.FixedExpenses = agg.FixedExpenses.Add(m.FixedExpenses)
		agg.VariableExpenses = agg.VariableExpenses.Add(m.VariableExpenses)
		agg.Payroll = agg.Payroll.Add(m.Payroll)
		agg.ConstitutionExpenses = agg.ConstitutionExpenses.Add(m.ConstitutionExpenses)
		agg.GrossProfit = agg.GrossProfit.Add(m.GrossProfit)
		agg.NetProfit = agg.NetProfit.Add(m.NetProfit)
		agg.BusinessProfit = agg.BusinessProfit.Add(m.BusinessProfit)
		agg.Burn = agg.Burn.Add(m.Burn)
		if m.HasActivity() {
			active++
		}
	}

	// Floor at 1 so zero-activity windows resolve to zero averages instead
	// of a division fault.
	if active < 1 {
		active = 1
	}
	agg.MonthsWithActivity = active

	divisor := decimal.NewFromInt(int64(active))
	agg.AvgMonthlyIncome = agg.OperationalIncome.Div(divisor)
	agg.AvgMonthlyExpenses = agg.TotalExpenses.Div(divisor)
	agg.AvgMonthlyBurn = agg.Burn.Div(divisor)

	return agg
}

// AggregatePeriod is the convenience path: bucketize the snapshot per month,
// then reduce. Transactions outside the period are ignored.
func AggregatePeriod(txs []Transaction, period Period) PeriodAggregate {
	return ReducePeriod(period, MonthlyAggregates(txs, period))
}

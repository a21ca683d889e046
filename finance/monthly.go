/*
monthly.go - Calendar-month bucketing

PURPOSE:
  Reduces the transactions of one calendar month into a MonthlyAggregate.
  This is the leaf stage of the pipeline: every higher-level figure (period
  KPIs, runway, break-even, projections) is derived from these buckets.

KEY INSIGHT:
  Operational income excludes partner/owner capital contributions. A month
  where the founders wired in 50k but nothing was sold has zero operational
  income, and the burn figure must reflect that. Total income keeps the
  literal accounting view.

PROFIT FIGURES:
  GrossProfit:    operational income - total expenses
  NetProfit:      total income - total expenses (contributions included)
  BusinessProfit: operational income - recurring expenses (constitution
                  one-time incorporation costs excluded)

EDGE CASES:
  An empty month yields an all-zero aggregate, never an error. Missing
  categories resolve to zero sums.

SEE ALSO:
  - reduce.go: Folds monthly aggregates into a PeriodAggregate
  - runway.go: Uses monthly fixed expenses for the burn figure
*/
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONTHLY AGGREGATE - One calendar month reduced to its KPI components
// =============================================================================

type MonthlyAggregate struct {
	Year  int
	Month time.Month

	// Income split
	TotalIncome          decimal.Decimal
	OperationalIncome    decimal.Decimal
	PartnerContributions decimal.Decimal
	MRRIncome            decimal.Decimal

	// Expense split
	TotalExpenses        decimal.Decimal
	FixedExpenses        decimal.Decimal
	VariableExpenses     decimal.Decimal
	Payroll              decimal.Decimal
	ConstitutionExpenses decimal.Decimal

	// Profit figures
	GrossProfit    decimal.Decimal
	NetProfit      decimal.Decimal
	BusinessProfit decimal.Decimal

	// Burn is the shortfall of operational income below total expenses,
	// floored at zero.
	Burn decimal.Decimal
}

// Key returns the calendar month this aggregate covers.
func (m MonthlyAggregate) Key() MonthKey {
	return MonthKey{Year: m.Year, Month: m.Month}
}

// HasActivity reports whether the month recorded any operational income or
// any expenses. The period reducer divides averages by the count of months
// with activity, not by the raw calendar span.
func (m MonthlyAggregate) HasActivity() bool {
	return m.TotalExpenses.IsPositive() || m.OperationalIncome.IsPositive()
}

// =============================================================================
// MONTHLY BUCKETIZER - Filter one month, fold its transactions
// =============================================================================

// MonthlyAggregateFor reduces the transactions falling in the given calendar
// month into a MonthlyAggregate. Deterministic, no side effects; an empty
// month yields an all-zero aggregate.
func MonthlyAggregateFor(txs []Transaction, year int, month time.Month) MonthlyAggregate {
	agg := zeroMonthlyAggregate(year, month)

	for _, tx := range txs {
		if !tx.Date.InMonth(year, month) {
			continue
		}
		switch tx.Type {
		case TxIncome:
			agg.TotalIncome = agg.TotalIncome.Add(tx.Amount)
			if tx.IncomeCategory.IsOperational() {
				agg.OperationalIncome = agg.OperationalIncome.Add(tx.Amount)
			} else {
				agg.PartnerContributions = agg.PartnerContributions.Add(tx.Amount)
			}
			if tx.IncomeCategory == IncomeMRR {
				agg.MRRIncome = agg.MRRIncome.Add(tx.Amount)
			}
		case TxExpense:
			agg.TotalExpenses = agg.TotalExpenses.Add(tx.Amount)
			switch tx.Classification {
			case ClassificationFixed:
				agg.FixedExpenses = agg.FixedExpenses.Add(tx.Amount)
			case ClassificationVariable:
				agg.VariableExpenses = agg.VariableExpenses.Add(tx.Amount)
			}
			if tx.ExpenseCategory == ExpensePayroll {
				agg.Payroll = agg.Payroll.Add(tx.Amount)
			}
			if tx.ExpenseCategory == ExpenseConstitution {
				agg.ConstitutionExpenses = agg.ConstitutionExpenses.Add(tx.Amount)
			}
		}
	}

	agg.GrossProfit = agg.OperationalIncome.Sub(agg.TotalExpenses)
	agg.NetProfit = agg.TotalIncome.Sub(agg.TotalExpenses)
	agg.BusinessProfit = agg.OperationalIncome.Sub(agg.TotalExpenses.Sub(agg.ConstitutionExpenses))
	agg.Burn = decimal.Max(decimal.Zero, agg.TotalExpenses.Sub(agg.OperationalIncome))

	return agg
}

// MonthlyAggregates builds one aggregate per calendar month the period
// touches, in chronological order, including zero-activity months.
func MonthlyAggregates(txs []Transaction, period Period) []MonthlyAggregate {
	months := period.Months()
	aggs := make([]MonthlyAggregate, 0, len(months))
	for _, mk := range months {
		aggs = append(aggs, MonthlyAggregateFor(txs, mk.Year, mk.Month))
	}
	return aggs
}

func zeroMonthlyAggregate(year int, month time.Month) MonthlyAggregate {
	return MonthlyAggregate{
		Year:                 year,
		Month:                month,
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
}

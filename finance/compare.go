/*
compare.go - Previous-period derivation and percentage deltas

PURPOSE:
  Given the caller-selected period, derives the immediately preceding period
  of identical length and produces percentage deltas for the headline
  comparison metrics.

PERCENTAGE-CHANGE RULE:
  For any metric pair (current, previous):
    previous == 0 && current >  0  ->  100
    previous == 0 && current == 0  ->  0
    otherwise                      ->  (current - previous) / previous * 100

  The same rule applies to EVERY comparison metric so the zero-previous edge
  case never diverges between metrics.

SEE ALSO:
  - period.go: Period.Previous()
  - reduce.go: The PeriodAggregates being compared
*/
package finance

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentChange applies the uniform percentage-change rule.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// =============================================================================
// COMPARISON - Current vs. previous period deltas
// =============================================================================

type Comparison struct {
	Current  PeriodAggregate
	Previous PeriodAggregate

	// Percentage deltas, all computed with PercentChange
	IncomeChange      decimal.Decimal
	ExpensesChange    decimal.Decimal
	GrossProfitChange decimal.Decimal
	BurnChange        decimal.Decimal
}

// Compare produces the percentage deltas between two period aggregates.
func Compare(current, previous PeriodAggregate) Comparison {
	return Comparison{
		Current:           current,
		Previous:          previous,
		IncomeChange:      PercentChange(current.OperationalIncome, previous.OperationalIncome),
		ExpensesChange:    PercentChange(current.TotalExpenses, previous.TotalExpenses),
		GrossProfitChange: PercentChange(current.GrossProfit, previous.GrossProfit),
		BurnChange:        PercentChange(current.Burn, previous.Burn),
	}
}

// ComparePeriods aggregates both windows from the snapshot and compares them.
// The previous window has identical duration and ends the day before the
// current window starts.
func ComparePeriods(txs []Transaction, current Period) Comparison {
	previous := current.Previous()
	return Compare(AggregatePeriod(txs, current), AggregatePeriod(txs, previous))
}

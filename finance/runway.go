/*
runway.go - Cash position and months-of-runway estimation

PURPOSE:
  Computes the all-time cash position and a months-of-runway figure from the
  full transaction history. Runway always ignores the caller's selected range:
  cash is a property of the whole ledger, not of the filtered view.

KEY INSIGHT:
  Runway reflects a worst-case, stop-selling assumption: how long does cash
  last at the most recent RELIABLE fixed-cost figure? A long-run average
  would be diluted by atypical months, so the estimator anchors on the last
  complete month and walks backward (at most six extra months) until it finds
  one with nonzero fixed expenses. Early-stage ledgers with lagging
  bookkeeping are the case this handles.

CASH POSITION:
  cash = all-time partner contributions
       + all-time operational income
       - all-time total expenses

  A negative value is a first-class signal (IsCashNegative), never clamped.

SEE ALSO:
  - breakeven.go: Revenue needed to stop the burn
  - projection.go: Extrapolates the runway into exhaustion dates and curves
  - alerts.go: Thresholds over these figures
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// RunwaySentinel is the months-of-runway value reported when there is cash
// but no fixed burn: effectively unbounded.
var RunwaySentinel = decimal.NewFromInt(999)

// maxFixedCostLookback bounds the backward scan for a month with nonzero
// fixed expenses.
const maxFixedCostLookback = 6

// =============================================================================
// RUNWAY ESTIMATE
// =============================================================================

type RunwayEstimate struct {
	// All-time cash position. May be negative; never clamped.
	CashPosition   decimal.Decimal
	IsCashNegative bool

	// MonthlyFixedCost is the fixed-expense figure of the anchor month found
	// by the backward scan (or the last complete month's zero if the scan
	// found nothing).
	MonthlyFixedCost decimal.Decimal

	// FixedCostMonth is the calendar month the fixed cost was taken from.
	FixedCostMonth MonthKey

	// MonthsOfRunway = cash / monthlyFixedCost when the fixed cost is
	// positive; otherwise the 999 sentinel when cash is positive, else 0.
	MonthsOfRunway decimal.Decimal

	// IsProfitable reports whether the anchor month's operational income
	// exceeded its total expenses.
	IsProfitable bool

	// AvgMonthlyProfit is the anchor month's net figure when profitable,
	// else zero.
	AvgMonthlyProfit decimal.Decimal
}

// =============================================================================
// RUNWAY ESTIMATOR
// =============================================================================

// EstimateRunway computes the runway figures from the full all-time snapshot.
//
// Steps:
//  1. Cash position over all recorded history.
//  2. Anchor on the last complete month relative to asOf.
//  3. If its fixed expenses are zero, step backward one month at a time, up
//     to six attempts, searching for the most recent month with nonzero
//     fixed expenses.
//  4. Derive months of runway, profitability, and monthly profit from the
//     month found (or the original anchor if none qualified).
func EstimateRunway(txs []Transaction, asOf TimePoint) RunwayEstimate {
	cash := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case TxIncome:
			// Both operational income and partner contributions are cash in.
			cash = cash.Add(tx.Amount)
		case TxExpense:
			cash = cash.Sub(tx.Amount)
		}
	}

	anchor := LastCompleteMonth(asOf)
	anchorAgg := MonthlyAggregateFor(txs, anchor.Year, anchor.Month)

	found := anchorAgg
	if !anchorAgg.FixedExpenses.IsPositive() {
		candidate := anchor
		for i := 0; i < maxFixedCostLookback; i++ {
			candidate = candidate.Prev()
			agg := MonthlyAggregateFor(txs, candidate.Year, candidate.Month)
			if agg.FixedExpenses.IsPositive() {
				found = agg
				break
			}
		}
	}

	est := RunwayEstimate{
		CashPosition:     cash,
		IsCashNegative:   cash.IsNegative(),
		MonthlyFixedCost: found.FixedExpenses,
		FixedCostMonth:   found.Key(),
		AvgMonthlyProfit: decimal.Zero,
	}

	switch {
	case est.MonthlyFixedCost.IsPositive():
		est.MonthsOfRunway = cash.Div(est.MonthlyFixedCost)
	case cash.IsPositive():
		est.MonthsOfRunway = RunwaySentinel
	default:
		est.MonthsOfRunway = decimal.Zero
	}

	net := found.OperationalIncome.Sub(found.TotalExpenses)
	if net.IsPositive() {
		est.IsProfitable = true
		est.AvgMonthlyProfit = net
	}

	return est
}

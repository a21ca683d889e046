/*
breakdown.go - Ranked category breakdowns for a period

PURPOSE:
  Groups the period's transactions by income/expense category into ranked,
  percentage-weighted breakdown lists. "Top expenses" is the first five
  entries of the expense breakdown.

CONTRACT:
  - Input is restricted to the requested period, not all-time
  - Zero-amount categories are omitted
  - Percentage denominator is the period total for that transaction type
    (income total or expense total), never the grand total of both
  - Sort: descending amount; ties keep first-seen category order (stable)

SEE ALSO:
  - report.go: Places breakdowns and top expenses in the final report
*/
package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// BREAKDOWN ENTRY - One category's share of the period total
// =============================================================================

type BreakdownEntry struct {
	Category string
	Amount   decimal.Decimal

	// Percentage of the period total for this transaction type.
	Percentage decimal.Decimal

	// Rank is the 1-based display position after sorting.
	Rank int
}

// =============================================================================
// BREAKDOWN BUILDER
// =============================================================================

// BuildIncomeBreakdown ranks the period's income by category.
func BuildIncomeBreakdown(txs []Transaction, period Period) []BreakdownEntry {
	return buildBreakdown(txs, period, TxIncome)
}

// BuildExpenseBreakdown ranks the period's expenses by category.
func BuildExpenseBreakdown(txs []Transaction, period Period) []BreakdownEntry {
	return buildBreakdown(txs, period, TxExpense)
}

// TopExpenses returns the first n entries of an expense breakdown.
func TopExpenses(breakdown []BreakdownEntry, n int) []BreakdownEntry {
	if len(breakdown) <= n {
		return breakdown
	}
	return breakdown[:n]
}

func buildBreakdown(txs []Transaction, period Period, txType TxType) []BreakdownEntry {
	sums := make(map[string]decimal.Decimal)
	var order []string // first-seen order, the tie-break for equal amounts
	total := decimal.Zero

	for _, tx := range txs {
		if tx.Type != txType || !period.Contains(tx.Date) {
			continue
		}
		cat := tx.categoryLabel()
		if _, seen := sums[cat]; !seen {
			sums[cat] = decimal.Zero
			order = append(order, cat)
		}
		sums[cat] = sums[cat].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	entries := make([]BreakdownEntry, 0, len(order))
	for _, cat := range order {
		amount := sums[cat]
		if amount.IsZero() {
			continue
		}
		entry := BreakdownEntry{Category: cat, Amount: amount, Percentage: decimal.Zero}
		if total.IsPositive() {
			entry.Percentage = amount.Div(total).Mul(hundred)
		}
		entries = append(entries, entry)
	}

	// Stable keeps first-seen order for equal amounts; no secondary key is
	// defined for ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount.GreaterThan(entries[j].Amount)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (t Transaction) categoryLabel() string {
	if t.Type == TxIncome {
		return string(t.IncomeCategory)
	}
	return string(t.ExpenseCategory)
}

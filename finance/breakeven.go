/*
breakeven.go - Break-even revenue solver

PURPOSE:
  Computes the monthly revenue at which fixed costs are fully covered once
  variable costs scale proportionally with revenue, and flags structurally
  unsustainable cost models.

MODEL:
  variableRatio    = variableExpenses / operationalIncome  (0 if no revenue)
  breakEvenRevenue = avgMonthlyFixed / (1 - variableRatio)

UNSUSTAINABLE CASE:
  When variable costs meet or exceed revenue, no revenue level covers fixed
  costs: more sales mean more loss. That state is reported explicitly
  (IsAchievable=false) instead of a solved figure; the numeric field carries
  a bounded display placeholder (avgMonthlyFixed x 10) so UIs never render
  infinity.

SEE ALSO:
  - reduce.go: Supplies the period sums and the activity-corrected averages
  - projection.go: Turns the gap into a projected break-even date
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// placeholderFactor bounds the unsustainable-case display figure.
var placeholderFactor = decimal.NewFromInt(10)

// =============================================================================
// BREAK-EVEN
// =============================================================================

type BreakEven struct {
	// VariableRatio is the observed variable-cost share of operational
	// income, zero when the period had no operational income.
	VariableRatio decimal.Decimal

	// IsAchievable is false iff variable expenses meet or exceed operational
	// income over the period: the cost model is structurally unsustainable.
	IsAchievable bool

	AvgMonthlyFixed decimal.Decimal

	// BreakEvenRevenue is the solved monthly revenue target when achievable,
	// or the bounded display placeholder when not. Callers must check
	// IsAchievable before treating it as a real target.
	BreakEvenRevenue decimal.Decimal

	// CurrentGap = avgMonthlyIncome - breakEvenRevenue (or minus the
	// placeholder when unachievable). Negative means revenue is short.
	CurrentGap decimal.Decimal
}

// =============================================================================
// SOLVER
// =============================================================================

// SolveBreakEven computes the break-even figures for the current period.
func SolveBreakEven(p PeriodAggregate) BreakEven {
	be := BreakEven{
		VariableRatio:   decimal.Zero,
		AvgMonthlyFixed: p.AvgMonthlyFixed(),
	}

	if p.OperationalIncome.IsPositive() {
		be.VariableRatio = p.VariableExpenses.Div(p.OperationalIncome)
	}

	// Achievable iff variable costs stay strictly below revenue. This also
	// covers the zero-revenue period: with nothing sold there is no observed
	// margin to solve against.
	be.IsAchievable = p.VariableExpenses.LessThan(p.OperationalIncome)

	if be.IsAchievable {
		margin := decimal.NewFromInt(1).Sub(be.VariableRatio)
		be.BreakEvenRevenue = be.AvgMonthlyFixed.Div(margin)
	} else {
		be.BreakEvenRevenue = be.AvgMonthlyFixed.Mul(placeholderFactor)
	}

	be.CurrentGap = p.AvgMonthlyIncome.Sub(be.BreakEvenRevenue)
	return be
}

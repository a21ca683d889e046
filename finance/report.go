/*
report.go - Full report assembly

PURPOSE:
  The Engine orchestrates every stage of the pipeline into one report:

    snapshot -> monthly buckets -> {period reducer (current + previous)
      -> comparator; category breakdowns}
    and {runway estimator -> break-even solver -> projection generator}
    -> alert rule engine -> report

  All stages are pure functions of their inputs. The engine performs exactly
  two fetches per report: one span covering previous-start..current-end for
  the period math, and the all-time snapshot for runway, MRR history, and
  recurring templates.

DETERMINISM:
  Report takes an explicit asOf date. The system clock is only consulted when
  the caller passes a zero asOf, which the HTTP layer does for live requests.
  Rerunning with the same snapshot and range yields identical output.

SEE ALSO:
  - ledger.go: The fetch interfaces
  - alerts.go: The final evaluation stage
*/
package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// FINANCIAL RATIOS - Period-level percentages
// =============================================================================

type FinancialRatios struct {
	// All values are percentages of operational income.
	PayrollToRevenue  decimal.Decimal
	FixedToRevenue    decimal.Decimal
	VariableToRevenue decimal.Decimal
	OperationalMargin decimal.Decimal

	// BurnRatio is average monthly burn over average monthly income.
	BurnRatio decimal.Decimal
}

// displayVariableRatioFallback is shown for VariableToRevenue when the period
// had no revenue to divide by. Display only; the break-even solver never
// uses it.
var displayVariableRatioFallback = decimal.NewFromInt(30)

// ComputeRatios derives the period's ratio figures with guarded denominators.
func ComputeRatios(p PeriodAggregate) FinancialRatios {
	r := FinancialRatios{
		PayrollToRevenue:  decimal.Zero,
		FixedToRevenue:    decimal.Zero,
		VariableToRevenue: displayVariableRatioFallback,
		OperationalMargin: decimal.Zero,
		BurnRatio:         decimal.Zero,
	}
	if p.OperationalIncome.IsPositive() {
		r.PayrollToRevenue = p.Payroll.Div(p.OperationalIncome).Mul(hundred)
		r.FixedToRevenue = p.FixedExpenses.Div(p.OperationalIncome).Mul(hundred)
		r.VariableToRevenue = p.VariableExpenses.Div(p.OperationalIncome).Mul(hundred)
		r.OperationalMargin = p.GrossProfit.Div(p.OperationalIncome).Mul(hundred)
	}
	if p.AvgMonthlyIncome.IsPositive() {
		r.BurnRatio = p.AvgMonthlyBurn.Div(p.AvgMonthlyIncome).Mul(hundred)
	}
	return r
}

// =============================================================================
// RUNWAY SHAPES - Legacy and health-metric views of the same estimate
// =============================================================================

// RunwayLegacy is the flat shape older report consumers read.
type RunwayLegacy struct {
	CashBalance  decimal.Decimal
	MonthlyBurn  decimal.Decimal
	MonthsRunway decimal.Decimal
}

// HealthMetrics is the richer shape carrying the profitability signals.
type HealthMetrics struct {
	CashPosition     decimal.Decimal
	IsCashNegative   bool
	MonthlyFixedCost decimal.Decimal
	MonthsOfRunway   decimal.Decimal
	IsProfitable     bool
	AvgMonthlyProfit decimal.Decimal
	RunwayTrend      RunwayTrend
}

// =============================================================================
// RECURRING TEMPLATES - Active templates with next-due day-of-month
// =============================================================================

type RecurringTemplate struct {
	ID       TransactionID
	Type     TxType
	Category string
	Amount   decimal.Decimal

	// DayOfMonthDue is the day-of-month the next instance falls due,
	// taken from the template's date.
	DayOfMonthDue int

	EndDate *TimePoint
}

// ActiveRecurringTemplates lists the recurring income/expense templates still
// active as of the given date.
func ActiveRecurringTemplates(txs []Transaction, asOf TimePoint) []RecurringTemplate {
	var templates []RecurringTemplate
	for _, tx := range txs {
		if !tx.IsActiveTemplate(asOf) {
			continue
		}
		templates = append(templates, RecurringTemplate{
			ID:            tx.ID,
			Type:          tx.Type,
			Category:      tx.categoryLabel(),
			Amount:        tx.Amount,
			DayOfMonthDue: tx.Date.Day(),
			EndDate:       tx.RecurringEndDate,
		})
	}
	return templates
}

// =============================================================================
// REPORT - The single structured output of the engine
// =============================================================================

type Report struct {
	AsOf           TimePoint
	Period         Period
	PreviousPeriod Period

	Current  PeriodAggregate
	Previous PeriodAggregate
	Changes  Comparison

	// MonthlyTrend is the per-month series for the current period,
	// zero-activity months included.
	MonthlyTrend []MonthlyAggregate

	IncomeBreakdown  []BreakdownEntry
	ExpenseBreakdown []BreakdownEntry
	TopExpenses      []BreakdownEntry

	Ratios    FinancialRatios
	BreakEven BreakEven

	Runway RunwayEstimate
	Legacy RunwayLegacy
	Health HealthMetrics

	Projections Projections
	Alerts      []Alert

	RecurringTemplates []RecurringTemplate

	ExchangeRate decimal.Decimal
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine computes reports from a ledger. It holds no state across
// invocations; multiple reports can be computed in parallel.
type Engine struct {
	Ledger Ledger
	Rates  RateProvider
}

func NewEngine(ledger Ledger) *Engine {
	return &Engine{Ledger: ledger}
}

// Report computes the full report for the given period. A zero asOf defaults
// to the real clock; every stage below this point is deterministic.
func (e *Engine) Report(ctx context.Context, period Period, asOf TimePoint) (*Report, error) {
	if period.End.Before(period.Start) {
		return nil, ErrInvalidPeriod
	}
	if asOf.IsZero() {
		asOf = Today()
	}

	previous := period.Previous()

	// One span fetch satisfies both windows.
	spanTxs, err := e.Ledger.TransactionsInRange(ctx, previous.Start, period.End)
	if err != nil {
		return nil, err
	}
	allTxs, err := e.Ledger.AllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	trend := MonthlyAggregates(spanTxs, period)
	current := ReducePeriod(period, trend)
	prevAgg := AggregatePeriod(spanTxs, previous)
	changes := Compare(current, prevAgg)

	expenseBreakdown := BuildExpenseBreakdown(spanTxs, period)

	runway := EstimateRunway(allTxs, asOf)
	breakEven := SolveBreakEven(current)
	projections := BuildProjections(allTxs, current, runway, breakEven, asOf)
	alerts := EvaluateAlerts(runway, breakEven, projections)

	return &Report{
		AsOf:             asOf,
		Period:           period,
		PreviousPeriod:   previous,
		Current:          current,
		Previous:         prevAgg,
		Changes:          changes,
		MonthlyTrend:     trend,
		IncomeBreakdown:  BuildIncomeBreakdown(spanTxs, period),
		ExpenseBreakdown: expenseBreakdown,
		TopExpenses:      TopExpenses(expenseBreakdown, 5),
		Ratios:           ComputeRatios(current),
		BreakEven:        breakEven,
		Runway:           runway,
		Legacy: RunwayLegacy{
			CashBalance:  runway.CashPosition,
			MonthlyBurn:  runway.MonthlyFixedCost,
			MonthsRunway: runway.MonthsOfRunway,
		},
		Health: HealthMetrics{
			CashPosition:     runway.CashPosition,
			IsCashNegative:   runway.IsCashNegative,
			MonthlyFixedCost: runway.MonthlyFixedCost,
			MonthsOfRunway:   runway.MonthsOfRunway,
			IsProfitable:     runway.IsProfitable,
			AvgMonthlyProfit: runway.AvgMonthlyProfit,
			RunwayTrend:      projections.RunwayTrend,
		},
		Projections:        projections,
		Alerts:             alerts,
		RecurringTemplates: ActiveRecurringTemplates(allTxs, asOf),
		ExchangeRate:       LatestRateOrFallback(ctx, e.Rates),
	}, nil
}

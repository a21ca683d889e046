/*
projection.go - Forward-looking extrapolation

PURPOSE:
  Extrapolates the computed KPIs into forward-looking figures: a runway
  trend classification, a cash-exhaustion date, a projected break-even date,
  compounded MRR projections, and a three-scenario 12-month cash curve.

KEY INSIGHT:
  Projections never invent assumptions. The break-even date requires a
  positive observed MRR growth rate; without one the months-to-break-even
  stays nil rather than defaulting to infinity or zero.

CASH CURVE MULTIPLIERS:
  The multiplier assignment is inverted between the two branches on purpose:
    profitable:   growth multipliers  {1.2, 1.0, 0.8}  optimistic/base/pessimistic
    unprofitable: burn multipliers    {0.8, 1.0, 1.2}  optimistic/base/pessimistic
  A smaller burn multiplier IS the optimistic case when cash is depleting.

SEE ALSO:
  - runway.go: Supplies cash position, fixed cost, and profitability
  - breakeven.go: Supplies the revenue gap
  - alerts.go: Thresholds over the growth rate
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RUNWAY TREND
// =============================================================================

type RunwayTrend string

const (
	TrendImproving RunwayTrend = "improving"
	TrendStable    RunwayTrend = "stable"
	TrendDeclining RunwayTrend = "declining"
)

// trendDeclineThreshold: the period average must sit more than 10% above the
// current fixed cost to classify as declining.
var trendDeclineThreshold = decimal.NewFromFloat(1.1)

// =============================================================================
// PROJECTIONS
// =============================================================================

type CashScenarioPoint struct {
	// MonthIndex is 1-based: point 1 is one month after asOf.
	MonthIndex int
	Date       TimePoint

	Optimistic  decimal.Decimal
	Base        decimal.Decimal
	Pessimistic decimal.Decimal
}

type Projections struct {
	RunwayTrend RunwayTrend

	// CashExhaustionDate is nil when burn is zero or cash is already gone.
	CashExhaustionDate *TimePoint

	// CurrentMRR is the latest complete month's MRR; MRRGrowthRate is the
	// month-over-month fraction observed against the month before it.
	CurrentMRR    decimal.Decimal
	MRRGrowthRate decimal.Decimal

	// Compounded MRR at the observed growth rate.
	MRRProjected3  decimal.Decimal
	MRRProjected6  decimal.Decimal
	MRRProjected12 decimal.Decimal

	// MonthsToBreakEven is nil when break-even is unachievable or no positive
	// growth assumption exists. Zero when current income already covers the
	// break-even revenue.
	MonthsToBreakEven *int
	BreakEvenDate     *TimePoint

	// CashProjection holds 12 monthly points for the three scenarios.
	CashProjection []CashScenarioPoint
}

// =============================================================================
// PROJECTION GENERATOR
// =============================================================================

// BuildProjections extrapolates the current period, runway, and break-even
// figures forward from asOf. The full snapshot supplies the MRR history.
func BuildProjections(txs []Transaction, current PeriodAggregate, runway RunwayEstimate, be BreakEven, asOf TimePoint) Projections {
	proj := Projections{
		RunwayTrend: classifyRunwayTrend(current, runway),
	}

	// Cash exhaustion: only meaningful with a positive burn and cash left.
	if runway.MonthlyFixedCost.IsPositive() && runway.CashPosition.IsPositive() {
		months := int(runway.MonthsOfRunway.IntPart())
		d := asOf.AddMonths(months)
		proj.CashExhaustionDate = &d
	}

	proj.CurrentMRR, proj.MRRGrowthRate = observedMRRGrowth(txs, asOf)

	growthFactor := decimal.NewFromInt(1).Add(proj.MRRGrowthRate)
	proj.MRRProjected3 = proj.CurrentMRR.Mul(growthFactor.Pow(decimal.NewFromInt(3)))
	proj.MRRProjected6 = proj.CurrentMRR.Mul(growthFactor.Pow(decimal.NewFromInt(6)))
	proj.MRRProjected12 = proj.CurrentMRR.Mul(growthFactor.Pow(decimal.NewFromInt(12)))

	proj.MonthsToBreakEven, proj.BreakEvenDate = projectBreakEvenDate(be, proj.CurrentMRR, proj.MRRGrowthRate, asOf)

	proj.CashProjection = projectCashCurve(runway, asOf)

	return proj
}

// classifyRunwayTrend compares the current period's average fixed cost to the
// runway estimator's anchor-month fixed cost.
func classifyRunwayTrend(current PeriodAggregate, runway RunwayEstimate) RunwayTrend {
	periodAvg := current.AvgMonthlyFixed()
	switch {
	case periodAvg.LessThan(runway.MonthlyFixedCost):
		return TrendImproving
	case periodAvg.GreaterThan(runway.MonthlyFixedCost.Mul(trendDeclineThreshold)):
		return TrendDeclining
	default:
		return TrendStable
	}
}

// observedMRRGrowth reads the last complete month's MRR and the month before
// it. Zero previous MRR yields a zero growth rate: a single data point is
// not a trend.
func observedMRRGrowth(txs []Transaction, asOf TimePoint) (currentMRR, rate decimal.Decimal) {
	latest := LastCompleteMonth(asOf)
	previous := latest.Prev()

	currentMRR = MonthlyAggregateFor(txs, latest.Year, latest.Month).MRRIncome
	prevMRR := MonthlyAggregateFor(txs, previous.Year, previous.Month).MRRIncome

	if prevMRR.IsPositive() {
		rate = currentMRR.Sub(prevMRR).Div(prevMRR)
	} else {
		rate = decimal.Zero
	}
	return currentMRR, rate
}

// projectBreakEvenDate turns the revenue gap into a month count and date.
func projectBreakEvenDate(be BreakEven, currentMRR, rate decimal.Decimal, asOf TimePoint) (*int, *TimePoint) {
	if !be.IsAchievable {
		return nil, nil
	}

	// Gap >= 0 means current average income already covers break-even.
	if !be.CurrentGap.IsNegative() {
		months := 0
		date := asOf
		return &months, &date
	}

	monthlyGrowth := rate.Mul(currentMRR)
	if !monthlyGrowth.IsPositive() {
		// No feasible date without a positive growth assumption.
		return nil, nil
	}

	toClose := be.CurrentGap.Neg()
	months := int(toClose.Div(monthlyGrowth).Ceil().IntPart())
	date := asOf.AddMonths(months)
	return &months, &date
}

// projectCashCurve produces the 12-point, three-scenario cash projection.
func projectCashCurve(runway RunwayEstimate, asOf TimePoint) []CashScenarioPoint {
	points := make([]CashScenarioPoint, 0, 12)

	profitGrowth := []decimal.Decimal{
		decimal.NewFromFloat(1.2), // optimistic
		decimal.NewFromFloat(1.0), // base
		decimal.NewFromFloat(0.8), // pessimistic
	}
	burnDepletion := []decimal.Decimal{
		decimal.NewFromFloat(0.8), // optimistic: burn runs below plan
		decimal.NewFromFloat(1.0), // base
		decimal.NewFromFloat(1.2), // pessimistic
	}

	for i := 1; i <= 12; i++ {
		idx := decimal.NewFromInt(int64(i))
		point := CashScenarioPoint{MonthIndex: i, Date: asOf.AddMonths(i)}

		if runway.IsProfitable {
			grow := func(mult decimal.Decimal) decimal.Decimal {
				return runway.CashPosition.Add(runway.AvgMonthlyProfit.Mul(mult).Mul(idx))
			}
			point.Optimistic = grow(profitGrowth[0])
			point.Base = grow(profitGrowth[1])
			point.Pessimistic = grow(profitGrowth[2])
		} else {
			deplete := func(mult decimal.Decimal) decimal.Decimal {
				return decimal.Max(decimal.Zero,
					runway.CashPosition.Sub(runway.MonthlyFixedCost.Mul(mult).Mul(idx)))
			}
			point.Optimistic = deplete(burnDepletion[0])
			point.Base = deplete(burnDepletion[1])
			point.Pessimistic = deplete(burnDepletion[2])
		}

		points = append(points, point)
	}
	return points
}

/*
alerts.go - Rule-based alert evaluation

PURPOSE:
  Evaluates the computed runway, break-even, and projection figures against a
  fixed threshold table and produces a prioritized list of alerts.

RULE TABLE (evaluated in this order, each rule independent):
  runway < 3 months AND not profitable      critical  runway
  cash position negative                    critical  cash
  3 <= runway < 6 AND not profitable        warning   runway
  break-even not achievable                 warning   breakeven
  profitable                                info      mrr
  MRR growth rate > 10%                     info      mrr

  Rules are deterministic and stateless; the only exclusion between them is
  the natural condition guard (a sub-3-month runway cannot also fire the
  3-to-6 rule).

SEE ALSO:
  - runway.go, breakeven.go, projection.go: The figures being thresholded
*/
package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ALERT MODEL
// =============================================================================

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

type AlertKind string

const (
	AlertRunway    AlertKind = "runway"
	AlertCash      AlertKind = "cash"
	AlertBreakEven AlertKind = "breakeven"
	AlertMRR       AlertKind = "mrr"
)

type Alert struct {
	Severity AlertSeverity
	Kind     AlertKind

	// Message carries the computed figures interpolated for display.
	Message string

	// Action is an optional suggested next step.
	Action string
}

// Alert thresholds.
var (
	runwayCriticalMonths = decimal.NewFromInt(3)
	runwayWarningMonths  = decimal.NewFromInt(6)
	mrrGrowthNoteworthy  = decimal.NewFromFloat(0.10)
)

// =============================================================================
// RULE ENGINE
// =============================================================================

// EvaluateAlerts walks the rule table in fixed order.
func EvaluateAlerts(runway RunwayEstimate, be BreakEven, proj Projections) []Alert {
	var alerts []Alert

	if runway.MonthsOfRunway.LessThan(runwayCriticalMonths) && !runway.IsProfitable {
		alerts = append(alerts, Alert{
			Severity: SeverityCritical,
			Kind:     AlertRunway,
			Message: fmt.Sprintf("Runway is %s months at a fixed burn of %s/month",
				runway.MonthsOfRunway.StringFixed(1), runway.MonthlyFixedCost.StringFixed(2)),
			Action: "Cut fixed costs or secure funding immediately",
		})
	}

	if runway.IsCashNegative {
		alerts = append(alerts, Alert{
			Severity: SeverityCritical,
			Kind:     AlertCash,
			Message: fmt.Sprintf("Cash position is negative: %s",
				runway.CashPosition.StringFixed(2)),
			Action: "Review outstanding liabilities and contributions",
		})
	}

	if runway.MonthsOfRunway.GreaterThanOrEqual(runwayCriticalMonths) &&
		runway.MonthsOfRunway.LessThan(runwayWarningMonths) && !runway.IsProfitable {
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Kind:     AlertRunway,
			Message: fmt.Sprintf("Runway is %s months; under six months of cash left",
				runway.MonthsOfRunway.StringFixed(1)),
			Action: "Plan cost reductions or a funding round",
		})
	}

	if !be.IsAchievable {
		alerts = append(alerts, Alert{
			Severity: SeverityWarning,
			Kind:     AlertBreakEven,
			Message: fmt.Sprintf("Break-even is not achievable: variable costs are %s%% of revenue",
				be.VariableRatio.Mul(hundred).StringFixed(1)),
			Action: "Restructure variable costs; margin is negative at any revenue level",
		})
	}

	if runway.IsProfitable {
		alerts = append(alerts, Alert{
			Severity: SeverityInfo,
			Kind:     AlertMRR,
			Message: fmt.Sprintf("Profitable last month: %s net",
				runway.AvgMonthlyProfit.StringFixed(2)),
		})
	}

	if proj.MRRGrowthRate.GreaterThan(mrrGrowthNoteworthy) {
		alerts = append(alerts, Alert{
			Severity: SeverityInfo,
			Kind:     AlertMRR,
			Message: fmt.Sprintf("MRR growing %s%% month over month",
				proj.MRRGrowthRate.Mul(hundred).StringFixed(1)),
		})
	}

	return alerts
}

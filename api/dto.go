/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal engine model from the external API contract. Decimal values
  convert to float64 at this edge only; the engine never holds floats.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request parsing maps strings onto the closed category enums via the
  finance.Parse* functions; invalid categories are rejected with 400.

SEE ALSO:
  - handlers.go: Uses these types
  - finance/report.go: The report being serialized
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/pulse/finance-engine/finance"
)

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// TransactionDTO represents a ledger transaction in API responses.
type TransactionDTO struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Type             string  `json:"type"`
	Amount           float64 `json:"amount"`
	IncomeCategory   string  `json:"income_category,omitempty"`
	ExpenseCategory  string  `json:"expense_category,omitempty"`
	Classification   string  `json:"classification,omitempty"`
	IsRecurring      bool    `json:"is_recurring,omitempty"`
	ParentID         *string `json:"parent_id,omitempty"`
	RecurringEndDate *string `json:"recurring_end_date,omitempty"`
}

// CreateTransactionRequest is the request to record a transaction.
type CreateTransactionRequest struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Type             string  `json:"type"`
	Amount           float64 `json:"amount"`
	IncomeCategory   string  `json:"income_category,omitempty"`
	ExpenseCategory  string  `json:"expense_category,omitempty"`
	Classification   string  `json:"classification,omitempty"`
	IsRecurring      bool    `json:"is_recurring,omitempty"`
	ParentID         *string `json:"parent_id,omitempty"`
	RecurringEndDate *string `json:"recurring_end_date,omitempty"`
}

// =============================================================================
// REPORT TYPES
// =============================================================================

type MonthlyAggregateDTO struct {
	Year                 int     `json:"year"`
	Month                int     `json:"month"`
	TotalIncome          float64 `json:"total_income"`
	OperationalIncome    float64 `json:"operational_income"`
	PartnerContributions float64 `json:"partner_contributions"`
	MRRIncome            float64 `json:"mrr_income"`
	TotalExpenses        float64 `json:"total_expenses"`
	FixedExpenses        float64 `json:"fixed_expenses"`
	VariableExpenses     float64 `json:"variable_expenses"`
	Payroll              float64 `json:"payroll"`
	ConstitutionExpenses float64 `json:"constitution_expenses"`
	GrossProfit          float64 `json:"gross_profit"`
	NetProfit            float64 `json:"net_profit"`
	BusinessProfit       float64 `json:"business_profit"`
	Burn                 float64 `json:"burn"`
}

type PeriodAggregateDTO struct {
	Start                string  `json:"start"`
	End                  string  `json:"end"`
	TotalIncome          float64 `json:"total_income"`
	OperationalIncome    float64 `json:"operational_income"`
	PartnerContributions float64 `json:"partner_contributions"`
	MRRIncome            float64 `json:"mrr_income"`
	TotalExpenses        float64 `json:"total_expenses"`
	FixedExpenses        float64 `json:"fixed_expenses"`
	VariableExpenses     float64 `json:"variable_expenses"`
	Payroll              float64 `json:"payroll"`
	ConstitutionExpenses float64 `json:"constitution_expenses"`
	GrossProfit          float64 `json:"gross_profit"`
	NetProfit            float64 `json:"net_profit"`
	BusinessProfit       float64 `json:"business_profit"`
	Burn                 float64 `json:"burn"`
	MonthsWithActivity   int     `json:"months_with_activity"`
	AvgMonthlyIncome     float64 `json:"avg_monthly_income"`
	AvgMonthlyExpenses   float64 `json:"avg_monthly_expenses"`
	AvgMonthlyBurn       float64 `json:"avg_monthly_burn"`
}

type ChangesDTO struct {
	IncomeChange      float64 `json:"income_change"`
	ExpensesChange    float64 `json:"expenses_change"`
	GrossProfitChange float64 `json:"gross_profit_change"`
	BurnChange        float64 `json:"burn_change"`
}

type BreakdownEntryDTO struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Rank       int     `json:"rank"`
}

type RatiosDTO struct {
	PayrollToRevenue  float64 `json:"payroll_to_revenue"`
	FixedToRevenue    float64 `json:"fixed_to_revenue"`
	VariableToRevenue float64 `json:"variable_to_revenue"`
	OperationalMargin float64 `json:"operational_margin"`
	BurnRatio         float64 `json:"burn_ratio"`
}

type BreakEvenDTO struct {
	VariableRatio    float64 `json:"variable_ratio"`
	IsAchievable     bool    `json:"is_achievable"`
	AvgMonthlyFixed  float64 `json:"avg_monthly_fixed"`
	BreakEvenRevenue float64 `json:"break_even_revenue"`
	CurrentGap       float64 `json:"current_gap"`
}

type RunwayDTO struct {
	CashPosition     float64 `json:"cash_position"`
	IsCashNegative   bool    `json:"is_cash_negative"`
	MonthlyFixedCost float64 `json:"monthly_fixed_cost"`
	FixedCostMonth   string  `json:"fixed_cost_month"`
	MonthsOfRunway   float64 `json:"months_of_runway"`
	IsProfitable     bool    `json:"is_profitable"`
	AvgMonthlyProfit float64 `json:"avg_monthly_profit"`
}

type RunwayLegacyDTO struct {
	CashBalance  float64 `json:"cash_balance"`
	MonthlyBurn  float64 `json:"monthly_burn"`
	MonthsRunway float64 `json:"months_runway"`
}

type HealthMetricsDTO struct {
	CashPosition     float64 `json:"cash_position"`
	IsCashNegative   bool    `json:"is_cash_negative"`
	MonthlyFixedCost float64 `json:"monthly_fixed_cost"`
	MonthsOfRunway   float64 `json:"months_of_runway"`
	IsProfitable     bool    `json:"is_profitable"`
	AvgMonthlyProfit float64 `json:"avg_monthly_profit"`
	RunwayTrend      string  `json:"runway_trend"`
}

type CashScenarioPointDTO struct {
	MonthIndex  int     `json:"month_index"`
	Date        string  `json:"date"`
	Optimistic  float64 `json:"optimistic"`
	Base        float64 `json:"base"`
	Pessimistic float64 `json:"pessimistic"`
}

type ProjectionsDTO struct {
	RunwayTrend        string                 `json:"runway_trend"`
	CashExhaustionDate *string                `json:"cash_exhaustion_date,omitempty"`
	CurrentMRR         float64                `json:"current_mrr"`
	MRRGrowthRate      float64                `json:"mrr_growth_rate"`
	MRRProjected3      float64                `json:"mrr_projected_3"`
	MRRProjected6      float64                `json:"mrr_projected_6"`
	MRRProjected12     float64                `json:"mrr_projected_12"`
	MonthsToBreakEven  *int                   `json:"months_to_break_even,omitempty"`
	BreakEvenDate      *string                `json:"break_even_date,omitempty"`
	CashProjection     []CashScenarioPointDTO `json:"cash_projection"`
}

type AlertDTO struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Action   string `json:"action,omitempty"`
}

type RecurringTemplateDTO struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	DayOfMonthDue int     `json:"day_of_month_due"`
	EndDate       *string `json:"end_date,omitempty"`
}

// ReportDTO is the full report response.
type ReportDTO struct {
	AsOf               string                 `json:"as_of"`
	Current            PeriodAggregateDTO     `json:"current"`
	Previous           PeriodAggregateDTO     `json:"previous"`
	Changes            ChangesDTO             `json:"changes"`
	MonthlyTrend       []MonthlyAggregateDTO  `json:"monthly_trend"`
	IncomeBreakdown    []BreakdownEntryDTO    `json:"income_breakdown"`
	ExpenseBreakdown   []BreakdownEntryDTO    `json:"expense_breakdown"`
	TopExpenses        []BreakdownEntryDTO    `json:"top_expenses"`
	Ratios             RatiosDTO              `json:"ratios"`
	BreakEven          BreakEvenDTO           `json:"break_even"`
	Runway             RunwayDTO              `json:"runway"`
	Legacy             RunwayLegacyDTO        `json:"legacy_runway"`
	Health             HealthMetricsDTO       `json:"health"`
	Projections        ProjectionsDTO         `json:"projections"`
	Alerts             []AlertDTO             `json:"alerts"`
	RecurringTemplates []RecurringTemplateDTO `json:"recurring_templates"`
	ExchangeRate       float64                `json:"exchange_rate"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func f(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func toTransactionDTO(tx finance.Transaction) TransactionDTO {
	dto := TransactionDTO{
		ID:          string(tx.ID),
		Date:        tx.Date.String(),
		Type:        string(tx.Type),
		Amount:      f(tx.Amount),
		IsRecurring: tx.IsRecurring,
	}
	if tx.Type == finance.TxIncome {
		dto.IncomeCategory = string(tx.IncomeCategory)
	} else {
		dto.ExpenseCategory = string(tx.ExpenseCategory)
		dto.Classification = string(tx.Classification)
	}
	if tx.ParentID != nil {
		pid := string(*tx.ParentID)
		dto.ParentID = &pid
	}
	if tx.RecurringEndDate != nil {
		end := tx.RecurringEndDate.String()
		dto.RecurringEndDate = &end
	}
	return dto
}

func toTransactionDTOs(txs []finance.Transaction) []TransactionDTO {
	dtos := make([]TransactionDTO, len(txs))
	for i, tx := range txs {
		dtos[i] = toTransactionDTO(tx)
	}
	return dtos
}

func toMonthlyDTO(m finance.MonthlyAggregate) MonthlyAggregateDTO {
	return MonthlyAggregateDTO{
		Year:                 m.Year,
		Month:                int(m.Month),
		TotalIncome:          f(m.TotalIncome),
		OperationalIncome:    f(m.OperationalIncome),
		PartnerContributions: f(m.PartnerContributions),
		MRRIncome:            f(m.MRRIncome),
		TotalExpenses:        f(m.TotalExpenses),
		FixedExpenses:        f(m.FixedExpenses),
		VariableExpenses:     f(m.VariableExpenses),
		Payroll:              f(m.Payroll),
		ConstitutionExpenses: f(m.ConstitutionExpenses),
		GrossProfit:          f(m.GrossProfit),
		NetProfit:            f(m.NetProfit),
		BusinessProfit:       f(m.BusinessProfit),
		Burn:                 f(m.Burn),
	}
}

func toPeriodDTO(p finance.PeriodAggregate) PeriodAggregateDTO {
	return PeriodAggregateDTO{
		Start:                p.Period.Start.String(),
		End:                  p.Period.End.String(),
		TotalIncome:          f(p.TotalIncome),
		OperationalIncome:    f(p.OperationalIncome),
		PartnerContributions: f(p.PartnerContributions),
		MRRIncome:            f(p.MRRIncome),
		TotalExpenses:        f(p.TotalExpenses),
		FixedExpenses:        f(p.FixedExpenses),
		VariableExpenses:     f(p.VariableExpenses),
		Payroll:              f(p.Payroll),
		ConstitutionExpenses: f(p.ConstitutionExpenses),
		GrossProfit:          f(p.GrossProfit),
		NetProfit:            f(p.NetProfit),
		BusinessProfit:       f(p.BusinessProfit),
		Burn:                 f(p.Burn),
		MonthsWithActivity:   p.MonthsWithActivity,
		AvgMonthlyIncome:     f(p.AvgMonthlyIncome),
		AvgMonthlyExpenses:   f(p.AvgMonthlyExpenses),
		AvgMonthlyBurn:       f(p.AvgMonthlyBurn),
	}
}

func toBreakdownDTOs(entries []finance.BreakdownEntry) []BreakdownEntryDTO {
	dtos := make([]BreakdownEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = BreakdownEntryDTO{
			Category:   e.Category,
			Amount:     f(e.Amount),
			Percentage: f(e.Percentage),
			Rank:       e.Rank,
		}
	}
	return dtos
}

func toReportDTO(r *finance.Report) ReportDTO {
	trend := make([]MonthlyAggregateDTO, len(r.MonthlyTrend))
	for i, m := range r.MonthlyTrend {
		trend[i] = toMonthlyDTO(m)
	}

	alerts := make([]AlertDTO, len(r.Alerts))
	for i, a := range r.Alerts {
		alerts[i] = AlertDTO{
			Severity: string(a.Severity),
			Kind:     string(a.Kind),
			Message:  a.Message,
			Action:   a.Action,
		}
	}

	templates := make([]RecurringTemplateDTO, len(r.RecurringTemplates))
	for i, t := range r.RecurringTemplates {
		templates[i] = RecurringTemplateDTO{
			ID:            string(t.ID),
			Type:          string(t.Type),
			Category:      t.Category,
			Amount:        f(t.Amount),
			DayOfMonthDue: t.DayOfMonthDue,
		}
		if t.EndDate != nil {
			end := t.EndDate.String()
			templates[i].EndDate = &end
		}
	}

	proj := ProjectionsDTO{
		RunwayTrend:    string(r.Projections.RunwayTrend),
		CurrentMRR:     f(r.Projections.CurrentMRR),
		MRRGrowthRate:  f(r.Projections.MRRGrowthRate),
		MRRProjected3:  f(r.Projections.MRRProjected3),
		MRRProjected6:  f(r.Projections.MRRProjected6),
		MRRProjected12: f(r.Projections.MRRProjected12),
	}
	if r.Projections.CashExhaustionDate != nil {
		d := r.Projections.CashExhaustionDate.String()
		proj.CashExhaustionDate = &d
	}
	if r.Projections.MonthsToBreakEven != nil {
		m := *r.Projections.MonthsToBreakEven
		proj.MonthsToBreakEven = &m
	}
	if r.Projections.BreakEvenDate != nil {
		d := r.Projections.BreakEvenDate.String()
		proj.BreakEvenDate = &d
	}
	proj.CashProjection = make([]CashScenarioPointDTO, len(r.Projections.CashProjection))
	for i, p := range r.Projections.CashProjection {
		proj.CashProjection[i] = CashScenarioPointDTO{
			MonthIndex:  p.MonthIndex,
			Date:        p.Date.String(),
			Optimistic:  f(p.Optimistic),
			Base:        f(p.Base),
			Pessimistic: f(p.Pessimistic),
		}
	}

	return ReportDTO{
		AsOf:     r.AsOf.String(),
		Current:  toPeriodDTO(r.Current),
		Previous: toPeriodDTO(r.Previous),
		Changes: ChangesDTO{
			IncomeChange:      f(r.Changes.IncomeChange),
			ExpensesChange:    f(r.Changes.ExpensesChange),
			GrossProfitChange: f(r.Changes.GrossProfitChange),
			BurnChange:        f(r.Changes.BurnChange),
		},
		MonthlyTrend:     trend,
		IncomeBreakdown:  toBreakdownDTOs(r.IncomeBreakdown),
		ExpenseBreakdown: toBreakdownDTOs(r.ExpenseBreakdown),
		TopExpenses:      toBreakdownDTOs(r.TopExpenses),
		Ratios: RatiosDTO{
			PayrollToRevenue:  f(r.Ratios.PayrollToRevenue),
			FixedToRevenue:    f(r.Ratios.FixedToRevenue),
			VariableToRevenue: f(r.Ratios.VariableToRevenue),
			OperationalMargin: f(r.Ratios.OperationalMargin),
			BurnRatio:         f(r.Ratios.BurnRatio),
		},
		BreakEven: BreakEvenDTO{
			VariableRatio:    f(r.BreakEven.VariableRatio),
			IsAchievable:     r.BreakEven.IsAchievable,
			AvgMonthlyFixed:  f(r.BreakEven.AvgMonthlyFixed),
			BreakEvenRevenue: f(r.BreakEven.BreakEvenRevenue),
			CurrentGap:       f(r.BreakEven.CurrentGap),
		},
		Runway: RunwayDTO{
			CashPosition:     f(r.Runway.CashPosition),
			IsCashNegative:   r.Runway.IsCashNegative,
			MonthlyFixedCost: f(r.Runway.MonthlyFixedCost),
			FixedCostMonth:   r.Runway.FixedCostMonth.String(),
			MonthsOfRunway:   f(r.Runway.MonthsOfRunway),
			IsProfitable:     r.Runway.IsProfitable,
			AvgMonthlyProfit: f(r.Runway.AvgMonthlyProfit),
		},
		Legacy: RunwayLegacyDTO{
			CashBalance:  f(r.Legacy.CashBalance),
			MonthlyBurn:  f(r.Legacy.MonthlyBurn),
			MonthsRunway: f(r.Legacy.MonthsRunway),
		},
		Health: HealthMetricsDTO{
			CashPosition:     f(r.Health.CashPosition),
			IsCashNegative:   r.Health.IsCashNegative,
			MonthlyFixedCost: f(r.Health.MonthlyFixedCost),
			MonthsOfRunway:   f(r.Health.MonthsOfRunway),
			IsProfitable:     r.Health.IsProfitable,
			AvgMonthlyProfit: f(r.Health.AvgMonthlyProfit),
			RunwayTrend:      string(r.Health.RunwayTrend),
		},
		Projections:        proj,
		Alerts:             alerts,
		RecurringTemplates: templates,
		ExchangeRate:       f(r.ExchangeRate),
	}
}

/*
Package finance provides the core financial metrics and forecasting engine.

PURPOSE:
  This package turns a raw ledger of dated, categorized money movements into
  period KPIs, a cash-runway estimate, a break-even projection, and rule-based
  alerts. It is a pure computation layer: given an immutable transaction
  snapshot and a date range, it produces one report with no side effects.

KEY CONCEPTS IN THIS FILE (types.go):
  - Transaction: An immutable ledger entry (income or expense)
  - IncomeCategory / ExpenseCategory: Closed category sets with "other" fallback
  - Classification: Fixed vs. variable expense split
  - Money values use decimal.Decimal to avoid floating-point errors

DESIGN PRINCIPLES:
  1. Immutability: The engine never mutates the snapshot it is given
  2. Precision: Uses decimal.Decimal for all monetary values and ratios
  3. Determinism: Every stage takes an explicit asOf date; the system clock
     is only read at the outermost entry point
  4. Closed categories: Invalid category strings are rejected at the boundary,
     never silently bucketed

USAGE:
  tx := finance.Transaction{
      Date:           finance.NewTimePoint(2025, time.March, 10),
      Type:           finance.TxIncome,
      Amount:         decimal.NewFromInt(1000),
      IncomeCategory: finance.IncomeMRR,
  }

SEE ALSO:
  - monthly.go: Calendar-month bucketing into MonthlyAggregate
  - reduce.go: Period reduction with activity-corrected averages
  - report.go: Full report assembly
*/
package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TRANSACTION TYPE - Income or expense
// =============================================================================

type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// ParseTxType validates a transaction type string at the boundary.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case TxIncome, TxExpense:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("%w: transaction type %q", ErrInvalidCategory, s)
	}
}

// =============================================================================
// INCOME CATEGORIES - Closed set with explicit "other" fallback
// =============================================================================

type IncomeCategory string

const (
	// IncomeMRR is recurring monthly revenue. It drives growth-rate and
	// break-even date projections.
	IncomeMRR IncomeCategory = "mrr"

	// IncomeOneTime covers one-off sales and project revenue.
	IncomeOneTime IncomeCategory = "one_time"

	// IncomeServices covers consulting and service revenue.
	IncomeServices IncomeCategory = "services"

	// IncomePartnerContribution is owner/partner capital. It counts toward
	// cash position but is excluded from operational income.
	IncomePartnerContribution IncomeCategory = "partner_contribution"

	// IncomeOther is the explicit fallback variant.
	IncomeOther IncomeCategory = "other"
)

// IncomeCategories lists all income categories in display order.
var IncomeCategories = []IncomeCategory{
	IncomeMRR, IncomeOneTime, IncomeServices, IncomePartnerContribution, IncomeOther,
}

// IsOperational reports whether income in this category counts toward
// operational income. Partner contributions are capital, not revenue.
func (c IncomeCategory) IsOperational() bool {
	return c != IncomePartnerContribution
}

// ParseIncomeCategory validates a category string at the boundary.
// Unknown categories are rejected, not bucketed.
func ParseIncomeCategory(s string) (IncomeCategory, error) {
	for _, c := range IncomeCategories {
		if IncomeCategory(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: income category %q", ErrInvalidCategory, s)
}

// =============================================================================
// EXPENSE CATEGORIES - Closed set with explicit "other" fallback
// =============================================================================

type ExpenseCategory string

const (
	// ExpensePayroll feeds the payroll-to-revenue ratio.
	ExpensePayroll ExpenseCategory = "payroll"

	ExpenseSoftware  ExpenseCategory = "software"
	ExpenseMarketing ExpenseCategory = "marketing"
	ExpenseOffice    ExpenseCategory = "office"
	ExpenseLegal     ExpenseCategory = "legal"

	// ExpenseConstitution is the one-time incorporation cost. It is tracked
	// separately so business profit can exclude it while gross/net profit
	// remain the literal accounting figures.
	ExpenseConstitution ExpenseCategory = "constitution"

	// ExpenseOther is the explicit fallback variant.
	ExpenseOther ExpenseCategory = "other"
)

// ExpenseCategories lists all expense categories in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpensePayroll, ExpenseSoftware, ExpenseMarketing, ExpenseOffice,
	ExpenseLegal, ExpenseConstitution, ExpenseOther,
}

// ParseExpenseCategory validates a category string at the boundary.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	for _, c := range ExpenseCategories {
		if ExpenseCategory(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: expense category %q", ErrInvalidCategory, s)
}

// =============================================================================
// EXPENSE CLASSIFICATION - Does the cost scale with revenue?
// =============================================================================

type Classification string

const (
	ClassificationFixed    Classification = "fixed"
	ClassificationVariable Classification = "variable"
)

// ParseClassification validates a classification string at the boundary.
func ParseClassification(s string) (Classification, error) {
	switch Classification(s) {
	case ClassificationFixed, ClassificationVariable:
		return Classification(s), nil
	default:
		return "", fmt.Errorf("%w: classification %q", ErrInvalidCategory, s)
	}
}

// =============================================================================
// TRANSACTION - Immutable ledger entry
// =============================================================================

type TransactionID string

// Transaction is a single dated money movement. Transactions are externally
// owned and read-only to this engine.
//
// INVARIANTS:
//   - Amount >= 0 (direction comes from Type, not sign)
//   - Every expense carries a Classification
//   - Date is the sole temporal key; callers normalize timezones upstream
type Transaction struct {
	ID   TransactionID
	Date TimePoint
	Type TxType

	// Amount is non-negative, in a single normalized currency (USD-equivalent).
	Amount decimal.Decimal

	// Set when Type == TxIncome.
	IncomeCategory IncomeCategory

	// Set when Type == TxExpense.
	ExpenseCategory ExpenseCategory
	Classification  Classification

	// Recurring template fields. A template has IsRecurring=true and a nil
	// ParentID; generated instances point back via ParentID.
	IsRecurring      bool
	ParentID         *TransactionID
	RecurringEndDate *TimePoint
}

// IsTemplate reports whether this transaction is a recurring template rather
// than a generated instance.
func (t Transaction) IsTemplate() bool {
	return t.IsRecurring && t.ParentID == nil
}

// IsActiveTemplate reports whether this recurring template is still active
// as of the given date (no end date, or end date not yet passed).
func (t Transaction) IsActiveTemplate(asOf TimePoint) bool {
	if !t.IsTemplate() {
		return false
	}
	return t.RecurringEndDate == nil || t.RecurringEndDate.AfterOrEqual(asOf)
}

// Validate checks the transaction invariants. Used at boundaries (API, store
// scan); the engine itself assumes an already-validated snapshot.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount %s", ErrNegativeAmount, t.Amount)
	}
	switch t.Type {
	case TxIncome:
		if _, err := ParseIncomeCategory(string(t.IncomeCategory)); err != nil {
			return err
		}
	case TxExpense:
		if _, err := ParseExpenseCategory(string(t.ExpenseCategory)); err != nil {
			return err
		}
		if _, err := ParseClassification(string(t.Classification)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: transaction type %q", ErrInvalidCategory, t.Type)
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

/*
ledger.go - External ledger collaborator interfaces

PURPOSE:
  The engine consumes transactions from an external store it does not own.
  Ledger is that collaborator's read surface: all-time history for the runway
  estimator, ranged fetches for period aggregation. Upstream fetch failures
  propagate unmodified; the engine has nothing to recover locally and
  performs no retries itself.

EXCHANGE RATES:
  Ledgers are expected to be normalized to a single currency upstream. For
  deployments where they are not, RateProvider supplies the latest exchange
  rate with a hard-coded fallback constant when unavailable.

SEE ALSO:
  - store.go: The persistence interface StoreLedger reads from
  - report.go: The Engine consuming this interface
*/
package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEDGER - Read surface of the external transaction store
// =============================================================================

type Ledger interface {
	// AllTransactions returns the full all-time snapshot, chronologically.
	// The runway estimator always works over all recorded history.
	AllTransactions(ctx context.Context) ([]Transaction, error)

	// TransactionsInRange returns transactions in [from, to]. The current and
	// previous period windows combined are satisfied by one fetch spanning
	// previous-start..current-end.
	TransactionsInRange(ctx context.Context, from, to TimePoint) ([]Transaction, error)
}

// =============================================================================
// STORE-BACKED LEDGER
// =============================================================================

type StoreLedger struct {
	Store Store
}

func NewLedger(store Store) *StoreLedger {
	return &StoreLedger{Store: store}
}

func (l *StoreLedger) AllTransactions(ctx context.Context) ([]Transaction, error) {
	return l.Store.LoadAll(ctx)
}

func (l *StoreLedger) TransactionsInRange(ctx context.Context, from, to TimePoint) ([]Transaction, error) {
	return l.Store.LoadRange(ctx, from, to)
}

// =============================================================================
// EXCHANGE RATE PROVIDER
// =============================================================================

// FallbackExchangeRate is used when no provider is configured or the
// provider fails. Only relevant when the ledger is not already normalized
// to one currency.
var FallbackExchangeRate = decimal.NewFromInt(4200)

type RateProvider interface {
	LatestRate(ctx context.Context) (decimal.Decimal, error)
}

// StaticRate is a fixed-rate provider.
type StaticRate struct {
	Rate decimal.Decimal
}

func (s StaticRate) LatestRate(context.Context) (decimal.Decimal, error) {
	return s.Rate, nil
}

// LatestRateOrFallback resolves the exchange rate, falling back to the
// constant on a nil provider or provider error.
func LatestRateOrFallback(ctx context.Context, p RateProvider) decimal.Decimal {
	if p == nil {
		return FallbackExchangeRate
	}
	rate, err := p.LatestRate(ctx)
	if err != nil || !rate.IsPositive() {
		return FallbackExchangeRate
	}
	return rate
}

/*
store.go - Persistence interface for the transaction ledger

PURPOSE:
  Defines the interface between the engine's collaborators and the database.
  The store is append-only: transactions are never updated or deleted, so a
  snapshot handed to the engine stays valid for the whole computation.

IDEMPOTENCY:
  Append rejects a transaction whose ID already exists. Retried writes from
  the upstream record system are therefore safe.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite store
  - finance/store: In-memory store for testing/dev

SEE ALSO:
  - ledger.go: Read surface built on this interface
*/
package finance

import "context"

// Store handles persistence of ledger transactions.
// IMPORTANT: Store is APPEND-ONLY. No Update, No Delete.
type Store interface {
	// Append persists a transaction. Returns ErrDuplicateIdempotencyKey if
	// the transaction ID already exists.
	Append(ctx context.Context, tx Transaction) error

	// AppendBatch persists multiple transactions atomically.
	// Either all succeed or none do.
	AppendBatch(ctx context.Context, txs []Transaction) error

	// LoadAll returns every transaction, ordered by date.
	LoadAll(ctx context.Context) ([]Transaction, error)

	// LoadRange returns transactions in [from, to], ordered by date.
	LoadRange(ctx context.Context, from, to TimePoint) ([]Transaction, error)

	// Exists checks whether a transaction ID is already recorded.
	Exists(ctx context.Context, id TransactionID) (bool, error)
}

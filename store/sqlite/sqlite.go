/*
Package sqlite provides a SQLite-backed implementation of the ledger store.

PURPOSE:
  Implements finance.Store using SQLite. In production, the same patterns
  apply to PostgreSQL - only minor SQL dialect differences.

APPEND-ONLY ENFORCEMENT:
  The store enforces append-only semantics:
  - No UPDATE statements on the transactions table
  - No DELETE statements on the transactions table

KEY TABLES:
  transactions: Immutable ledger of all money movements

INDEXES:
  - idx_transactions_date: Ranged period fetches (hot path)
  - idx_transactions_type: Type filtering
  - idx_transactions_parent: Recurring template instance lookups

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't block
  while the upstream record system appends.

USAGE:
  store, err := sqlite.New("./data/ledger.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  ledger := finance.NewLedger(store)

SEE ALSO:
  - finance/store.go: Interface definition
  - finance/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/pulse/finance-engine/finance"
)

// Store implements finance.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Transactions (append-only ledger)
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		tx_type TEXT NOT NULL,
		amount TEXT NOT NULL,
		income_category TEXT,
		expense_category TEXT,
		classification TEXT,
		is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
		parent_id TEXT,
		recurring_end_date TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_date
		ON transactions(date);
	CREATE INDEX IF NOT EXISTS idx_transactions_type
		ON transactions(tx_type);
	CREATE INDEX IF NOT EXISTS idx_transactions_parent
		ON transactions(parent_id) WHERE parent_id IS NOT NULL;
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TRANSACTION STORE (finance.Store interface)
// =============================================================================

// Append adds a transaction to the ledger.
func (s *Store) Append(ctx context.Context, tx finance.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendTx(ctx, s.db, tx)
}

func (s *Store) appendTx(ctx context.Context, db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, tx finance.Transaction) error {
	query := `
		INSERT INTO transactions
		(id, date, tx_type, amount, income_category, expense_category,
		 classification, is_recurring, parent_id, recurring_end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var parentID any
	if tx.ParentID != nil {
		parentID = string(*tx.ParentID)
	}
	var endDate any
	if tx.RecurringEndDate != nil {
		endDate = tx.RecurringEndDate.String()
	}

	_, err := db.ExecContext(ctx, query,
		tx.ID,
		tx.Date.String(),
		tx.Type,
		tx.Amount.String(),
		nullString(string(tx.IncomeCategory)),
		nullString(string(tx.ExpenseCategory)),
		nullString(string(tx.Classification)),
		tx.IsRecurring,
		parentID,
		endDate,
		time.Now().UTC().Format(time.RFC3339),
	)

	if err != nil {
		if isUniqueConstraintError(err) {
			return finance.ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("%w: %v", finance.ErrTransactionFailed, err)
	}

	return nil
}

// AppendBatch adds multiple transactions atomically.
func (s *Store) AppendBatch(ctx context.Context, txs []finance.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check for duplicate IDs within the batch first
	ids := make(map[finance.TransactionID]bool)
	for _, tx := range txs {
		if tx.ID != "" {
			if ids[tx.ID] {
				return finance.ErrDuplicateIdempotencyKey
			}
			ids[tx.ID] = true
		}
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	for _, tx := range txs {
		if err := s.appendTx(ctx, sqlTx, tx); err != nil {
			return err
		}
	}

	return sqlTx.Commit()
}

// LoadAll returns the full all-time snapshot, ordered by date.
func (s *Store) LoadAll(ctx context.Context) ([]finance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, date, tx_type, amount, income_category, expense_category,
		       classification, is_recurring, parent_id, recurring_end_date
		FROM transactions
		ORDER BY date ASC, created_at ASC
	`

	return s.queryTransactions(ctx, query)
}

// LoadRange returns transactions in [from, to].
func (s *Store) LoadRange(ctx context.Context, from, to finance.TimePoint) ([]finance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, date, tx_type, amount, income_category, expense_category,
		       classification, is_recurring, parent_id, recurring_end_date
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, created_at ASC
	`

	return s.queryTransactions(ctx, query, from.String(), to.String())
}

// Exists checks if a transaction ID is already recorded.
func (s *Store) Exists(ctx context.Context, id finance.TransactionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE id = ?",
		string(id),
	).Scan(&count)

	return count > 0, err
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]finance.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []finance.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func scanTransaction(rows *sql.Rows) (finance.Transaction, error) {
	var (
		tx              finance.Transaction
		date            string
		amount          string
		incomeCategory  sql.NullString
		expenseCategory sql.NullString
		classification  sql.NullString
		parentID        sql.NullString
		endDate         sql.NullString
	)

	err := rows.Scan(
		&tx.ID, &date, &tx.Type, &amount,
		&incomeCategory, &expenseCategory, &classification,
		&tx.IsRecurring, &parentID, &endDate,
	)
	if err != nil {
		return tx, fmt.Errorf("failed to scan transaction: %w", err)
	}

	tx.Date, err = parseDate(date)
	if err != nil {
		return tx, err
	}
	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return tx, fmt.Errorf("failed to parse amount %q: %w", amount, err)
	}
	tx.IncomeCategory = finance.IncomeCategory(incomeCategory.String)
	tx.ExpenseCategory = finance.ExpenseCategory(expenseCategory.String)
	tx.Classification = finance.Classification(classification.String)

	if parentID.Valid {
		pid := finance.TransactionID(parentID.String)
		tx.ParentID = &pid
	}
	if endDate.Valid && endDate.String != "" {
		end, err := parseDate(endDate.String)
		if err != nil {
			return tx, err
		}
		tx.RecurringEndDate = &end
	}

	return tx, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func parseDate(s string) (finance.TimePoint, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return finance.TimePoint{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return finance.NewTimePointFromTime(t), nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

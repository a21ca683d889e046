// Package store provides Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/pulse/finance-engine/finance"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu           sync.RWMutex
	transactions []finance.Transaction
	byID         map[finance.TransactionID]bool
}

func NewMemory() *Memory {
	return &Memory{
		byID: make(map[finance.TransactionID]bool),
	}
}

// Append adds a single transaction. Append-only.
func (m *Memory) Append(_ context.Context, tx finance.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendLocked(tx)
}

// AppendBatch adds multiple transactions atomically.
func (m *Memory) AppendBatch(_ context.Context, txs []finance.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Check all IDs first (atomic check)
	for _, tx := range txs {
		if tx.ID != "" && m.byID[tx.ID] {
			return finance.ErrDuplicateIdempotencyKey
		}
	}

	for _, tx := range txs {
		if err := m.appendLocked(tx); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) appendLocked(tx finance.Transaction) error {
	if tx.ID != "" {
		if m.byID[tx.ID] {
			return finance.ErrDuplicateIdempotencyKey
		}
		m.byID[tx.ID] = true
	}

	// Binary search for insertion point keeps the slice date-ordered.
	i := sort.Search(len(m.transactions), func(i int) bool {
		return m.transactions[i].Date.After(tx.Date)
	})
	m.transactions = append(m.transactions, finance.Transaction{})
	copy(m.transactions[i+1:], m.transactions[i:])
	m.transactions[i] = tx
	return nil
}

func (m *Memory) LoadAll(_ context.Context) ([]finance.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]finance.Transaction, len(m.transactions))
	copy(result, m.transactions)
	return result, nil
}

func (m *Memory) LoadRange(_ context.Context, from, to finance.TimePoint) ([]finance.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []finance.Transaction
	for _, tx := range m.transactions {
		if from.BeforeOrEqual(tx.Date) && tx.Date.BeforeOrEqual(to) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (m *Memory) Exists(_ context.Context, id finance.TransactionID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byID[id], nil
}

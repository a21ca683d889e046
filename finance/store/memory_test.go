package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/finance-engine/finance"
	"github.com/pulse/finance-engine/finance/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func tx(id string, year int, month time.Month, day int, amount int64) finance.Transaction {
	return finance.Transaction{
		ID:             finance.TransactionID(id),
		Date:           finance.NewTimePoint(year, month, day),
		Type:           finance.TxIncome,
		Amount:         decimal.NewFromInt(amount),
		IncomeCategory: finance.IncomeMRR,
	}
}

// =============================================================================
// MEMORY STORE TESTS
// =============================================================================

func TestMemory_AppendAndLoadAll(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, tx("tx-1", 2025, time.March, 10, 100)))
	require.NoError(t, m.Append(ctx, tx("tx-2", 2025, time.March, 12, 200)))

	all, err := m.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, finance.TransactionID("tx-1"), all[0].ID)
}

func TestMemory_DuplicateID_Rejected(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, tx("tx-1", 2025, time.March, 10, 100)))
	err := m.Append(ctx, tx("tx-1", 2025, time.April, 1, 999))

	assert.ErrorIs(t, err, finance.ErrDuplicateIdempotencyKey)

	all, _ := m.LoadAll(ctx)
	assert.Len(t, all, 1)
}

func TestMemory_AppendBatch_AtomicOnDuplicate(t *testing.T) {
	// GIVEN: A batch whose second entry collides with an existing ID
	// WHEN: The batch is appended
	// THEN: Nothing from the batch is persisted

	m := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Append(ctx, tx("tx-1", 2025, time.March, 10, 100)))

	err := m.AppendBatch(ctx, []finance.Transaction{
		tx("tx-2", 2025, time.March, 11, 200),
		tx("tx-1", 2025, time.March, 12, 300),
	})

	assert.ErrorIs(t, err, finance.ErrDuplicateIdempotencyKey)
	all, _ := m.LoadAll(ctx)
	assert.Len(t, all, 1)
}

func TestMemory_LoadAll_ChronologicalRegardlessOfInsertOrder(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, tx("tx-late", 2025, time.June, 1, 100)))
	require.NoError(t, m.Append(ctx, tx("tx-early", 2025, time.January, 1, 100)))
	require.NoError(t, m.Append(ctx, tx("tx-mid", 2025, time.March, 1, 100)))

	all, err := m.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, finance.TransactionID("tx-early"), all[0].ID)
	assert.Equal(t, finance.TransactionID("tx-mid"), all[1].ID)
	assert.Equal(t, finance.TransactionID("tx-late"), all[2].ID)
}

func TestMemory_LoadRange_InclusiveBounds(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, tx("tx-1", 2025, time.February, 28, 100)))
	require.NoError(t, m.Append(ctx, tx("tx-2", 2025, time.March, 1, 100)))
	require.NoError(t, m.Append(ctx, tx("tx-3", 2025, time.March, 31, 100)))
	require.NoError(t, m.Append(ctx, tx("tx-4", 2025, time.April, 1, 100)))

	got, err := m.LoadRange(ctx,
		finance.NewTimePoint(2025, time.March, 1),
		finance.NewTimePoint(2025, time.March, 31))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, finance.TransactionID("tx-2"), got[0].ID)
	assert.Equal(t, finance.TransactionID("tx-3"), got[1].ID)
}

func TestMemory_Exists(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Append(ctx, tx("tx-1", 2025, time.March, 10, 100)))

	found, err := m.Exists(ctx, "tx-1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = m.Exists(ctx, "tx-missing")
	require.NoError(t, err)
	assert.False(t, found)
}

package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/store"
	"github.com/footprint-tools/stockline/internal/store/schema"
)

// NewTestDB creates an in-memory SQLite database with the ledger schema applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", store.MemoryDSN)
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, schema.Apply(db), "failed to apply schema")
	return db
}

// NewTestStore wraps NewTestDB in a ledger Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// Date builds a UTC midnight date, the form the literal parser produces.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedBatches registers the product if needed and stores the given batches.
func SeedBatches(t *testing.T, s domain.LedgerStore, product string, batches ...domain.Batch) {
	t.Helper()

	exists, err := s.ProductExists(product)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, s.CreateProduct(product))
	}

	for _, b := range batches {
		b.Product = product
		if b.Remaining == 0 {
			b.Remaining = b.Amount
		}
		require.NoError(t, s.AddBatch(b), "failed to seed batch: %+v", b)
	}
}

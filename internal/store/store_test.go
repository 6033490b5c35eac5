package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/store"
	"github.com/footprint-tools/stockline/internal/testutil"
)

func TestNew_InMemory(t *testing.T) {
	s, err := store.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.CreateProduct("iphone"))
	exists, err := s.ProductExists("iphone")
	require.NoError(t, err)
	require.True(t, exists)

	other, err := store.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Close() })

	exists, err = other.ProductExists("iphone")
	require.NoError(t, err)
	require.False(t, exists, "each store is a private in-memory ledger")
}

func TestStore_CreateProduct_Duplicate(t *testing.T) {
	s := testutil.NewTestStore(t)

	require.NoError(t, s.CreateProduct("iphone"))
	err := s.CreateProduct("iphone")
	require.True(t, errors.Is(err, domain.ErrDuplicate), "got %v", err)

	require.NoError(t, s.CreateProduct("IPHONE"), "product names are case sensitive")
}

func TestStore_AddBatch_RequiresProduct(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.AddBatch(domain.Batch{Product: "ghost", Amount: 1, Remaining: 1, Price: 1, Date: testutil.Date(2017, 1, 1)})
	require.Error(t, err, "foreign key on products must be enforced")
}

func TestStore_AvailableBatches_Order(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedBatches(t, s, "iphone",
		domain.Batch{ID: "late", Amount: 1, Price: 3000, Date: testutil.Date(2017, 3, 1)},
		domain.Batch{ID: "first", Amount: 1, Price: 1000, Date: testutil.Date(2017, 1, 1)},
		domain.Batch{ID: "second", Amount: 2, Price: 2000, Date: testutil.Date(2017, 1, 1)},
	)
	testutil.SeedBatches(t, s, "android",
		domain.Batch{Amount: 5, Price: 10, Date: testutil.Date(2017, 1, 1)},
	)

	batches, err := s.AvailableBatches("iphone", testutil.Date(2017, 2, 1))
	require.NoError(t, err)
	require.Len(t, batches, 2)
	require.Equal(t, "first", batches[0].ID)
	require.Equal(t, "second", batches[1].ID)
	require.Equal(t, testutil.Date(2017, 1, 1), batches[1].Date)
	require.Equal(t, 2, batches[1].Remaining)

	all, err := s.AvailableBatches("iphone", testutil.Date(2017, 3, 1))
	require.NoError(t, err)
	require.Len(t, all, 3, "batches dated on the cut-off day are included")
}

func TestStore_RecordSale(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedBatches(t, s, "iphone",
		domain.Batch{ID: "a", Amount: 1, Price: 1000, Date: testutil.Date(2017, 1, 1)},
		domain.Batch{ID: "b", Amount: 2, Price: 2000, Date: testutil.Date(2017, 2, 1)},
	)

	sale := domain.Sale{Product: "iphone", Amount: 2, Price: 5000, Cost: 3000, Profit: 7000, Date: testutil.Date(2017, 3, 1)}
	require.NoError(t, s.RecordSale(sale, []domain.BatchDraw{{BatchID: "a", Amount: 1}, {BatchID: "b", Amount: 1}}))

	batches, err := s.AvailableBatches("iphone", testutil.Date(2017, 3, 1))
	require.NoError(t, err)
	require.Len(t, batches, 1, "exhausted batch is no longer available")
	require.Equal(t, "b", batches[0].ID)
	require.Equal(t, 1, batches[0].Remaining)

	sales, err := store.Sales(s, "iphone")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.NotEmpty(t, sales[0].ID)
	require.Equal(t, 7000, sales[0].Profit)
	require.Equal(t, testutil.Date(2017, 3, 1), sales[0].Date)
}

func TestStore_RecordSale_StaleBatchRollsBack(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedBatches(t, s, "iphone",
		domain.Batch{ID: "a", Amount: 1, Price: 1000, Date: testutil.Date(2017, 1, 1)},
		domain.Batch{ID: "b", Amount: 1, Price: 2000, Date: testutil.Date(2017, 1, 2)},
	)

	sale := domain.Sale{Product: "iphone", Amount: 3, Price: 10, Date: testutil.Date(2017, 3, 1)}
	err := s.RecordSale(sale, []domain.BatchDraw{{BatchID: "a", Amount: 1}, {BatchID: "b", Amount: 2}})
	require.True(t, errors.Is(err, domain.ErrStaleBatch), "got %v", err)

	batches, err := s.AvailableBatches("iphone", testutil.Date(2017, 3, 1))
	require.NoError(t, err)
	require.Len(t, batches, 2)
	require.Equal(t, 1, batches[0].Remaining, "first draw must be rolled back")

	sales, err := store.Sales(s, "iphone")
	require.NoError(t, err)
	require.Empty(t, sales)
}

func TestStore_ProfitUpTo(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedBatches(t, s, "iphone",
		domain.Batch{ID: "a", Amount: 10, Price: 100, Date: testutil.Date(2017, 1, 1)},
	)

	total, err := s.ProfitUpTo("iphone", testutil.Date(2017, 12, 31))
	require.NoError(t, err)
	require.Zero(t, total)

	require.NoError(t, s.RecordSale(
		domain.Sale{Product: "iphone", Amount: 1, Price: 150, Cost: 100, Profit: 50, Date: testutil.Date(2017, 2, 1)},
		[]domain.BatchDraw{{BatchID: "a", Amount: 1}},
	))
	require.NoError(t, s.RecordSale(
		domain.Sale{Product: "iphone", Amount: 1, Price: 80, Cost: 100, Profit: -20, Date: testutil.Date(2017, 3, 1)},
		[]domain.BatchDraw{{BatchID: "a", Amount: 1}},
	))

	tests := []struct {
		upTo int
		want int
	}{
		{upTo: 30, want: 0},
		{upTo: 31, want: 50},
		{upTo: 59, want: 30},
	}
	for _, tt := range tests {
		got, err := s.ProfitUpTo("iphone", testutil.Date(2017, 1, 1).AddDate(0, 0, tt.upTo))
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "profit up to day %d", tt.upTo)
	}
}

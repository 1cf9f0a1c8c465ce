package adapters

import (
	"context"
	"sort"
	"testing"
	"time"

	"pricing_backend/internal/feature/pricing/domain/entity"
	"pricing_backend/internal/feature/pricing/seed"
	"pricing_backend/internal/feature/pricing/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceStore = PriceReadWriter

func ts(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func ids(prices []entity.Price) []int64 {
	out := make([]int64, 0, len(prices))
	for _, p := range prices {
		out = append(out, p.ID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// runStoreContract は候補検索の契約（(product, brand) 一致かつ両端を含む期間包含）を検証します。
// newStore は呼び出しごとに空のストアを返す必要があります。
func runStoreContract(t *testing.T, newStore func(t *testing.T) priceStore) {
	t.Helper()

	t.Run("reference candidates", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpsertBatch(context.Background(), seed.Reference()))

		tests := []struct {
			name    string
			at      time.Time
			wantIDs []int64
		}{
			{name: "10:00 on the 14th", at: ts(2020, 6, 14, 10, 0, 0), wantIDs: []int64{1}},
			{name: "16:00 on the 14th", at: ts(2020, 6, 14, 16, 0, 0), wantIDs: []int64{1, 2}},
			{name: "21:00 on the 14th", at: ts(2020, 6, 14, 21, 0, 0), wantIDs: []int64{1}},
			{name: "10:00 on the 15th", at: ts(2020, 6, 15, 10, 0, 0), wantIDs: []int64{1, 3}},
			{name: "21:00 on the 16th", at: ts(2020, 6, 16, 21, 0, 0), wantIDs: []int64{1, 4}},
			{name: "start bound inclusive", at: ts(2020, 6, 14, 15, 0, 0), wantIDs: []int64{1, 2}},
			{name: "end bound inclusive", at: ts(2020, 6, 14, 18, 30, 0), wantIDs: []int64{1, 2}},
			{name: "one second past end", at: ts(2020, 6, 14, 18, 30, 1), wantIDs: []int64{1}},
			{name: "one second before start", at: ts(2020, 6, 13, 23, 59, 59), wantIDs: []int64{}},
			{name: "last second of the year", at: ts(2020, 12, 31, 23, 59, 59), wantIDs: []int64{1, 4}},
		}

		for _, tt := range tests {
			got, err := store.FindCandidates(context.Background(), seed.ReferenceProductID, seed.ReferenceBrandID, tt.at)
			require.NoError(t, err, tt.name)
			assert.Equal(t, tt.wantIDs, ids(got), tt.name)
		}
	})

	t.Run("filters by product and brand", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpsertBatch(context.Background(), seed.Reference()))

		at := ts(2020, 6, 14, 16, 0, 0)
		got, err := store.FindCandidates(context.Background(), 99999, seed.ReferenceBrandID, at)
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = store.FindCandidates(context.Background(), seed.ReferenceProductID, 2, at)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("round trips every field", func(t *testing.T) {
		store := newStore(t)
		want := seed.Reference()[1]
		require.NoError(t, store.UpsertBatch(context.Background(), []entity.Price{want}))

		got, err := store.FindCandidates(context.Background(), want.ProductID, want.BrandID, want.StartDate)
		require.NoError(t, err)
		require.Len(t, got, 1)

		p := got[0]
		assert.Equal(t, want.ID, p.ID)
		assert.Equal(t, want.BrandID, p.BrandID)
		assert.Equal(t, want.ProductID, p.ProductID)
		assert.Equal(t, want.PriceList, p.PriceList)
		assert.True(t, want.StartDate.Equal(p.StartDate), "start date: %v", p.StartDate)
		assert.True(t, want.EndDate.Equal(p.EndDate), "end date: %v", p.EndDate)
		assert.Equal(t, want.Priority, p.Priority)
		assert.True(t, want.Amount.Equal(p.Amount), "amount: %s", p.Amount)
		assert.Equal(t, want.Currency, p.Currency)
	})

	t.Run("upsert replaces by id", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpsertBatch(context.Background(), seed.Reference()))

		moved := seed.Reference()[1]
		moved.ProductID = 1000
		require.NoError(t, store.UpsertBatch(context.Background(), []entity.Price{moved}))

		at := ts(2020, 6, 14, 16, 0, 0)
		got, err := store.FindCandidates(context.Background(), seed.ReferenceProductID, seed.ReferenceBrandID, at)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids(got))

		got, err = store.FindCandidates(context.Background(), 1000, seed.ReferenceBrandID, at)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, ids(got))
	})

	t.Run("resolver agrees across backends", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpsertBatch(context.Background(), seed.Reference()))

		uc := usecase.NewPriceUsecase(store)
		p, err := uc.GetApplicablePrice(context.Background(), seed.ReferenceProductID, seed.ReferenceBrandID, ts(2020, 6, 16, 21, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, int64(4), p.PriceList)
	})
}

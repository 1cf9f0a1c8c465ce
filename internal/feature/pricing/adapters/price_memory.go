package adapters

import (
	"context"
	"sync"
	"time"

	"pricing_backend/internal/feature/pricing/domain/entity"
)

type pairKey struct {
	productID int64
	brandID   int64
}

// PriceMemory keeps price records in process memory, indexed by (product, brand).
// Writers build a new snapshot and swap it in, so a reader sees either the whole
// previous batch or the whole new one.
type PriceMemory struct {
	mu     sync.RWMutex
	byID   map[int64]entity.Price
	byPair map[pairKey][]entity.Price
}

var _ PriceReadWriter = (*PriceMemory)(nil)

// NewPriceMemory returns an empty in-memory store.
func NewPriceMemory() *PriceMemory {
	return &PriceMemory{
		byID:   map[int64]entity.Price{},
		byPair: map[pairKey][]entity.Price{},
	}
}

func (m *PriceMemory) FindCandidates(ctx context.Context, productID, brandID int64, at time.Time) ([]entity.Price, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	at = entity.WallClock(at)

	m.mu.RLock()
	bucket := m.byPair[pairKey{productID: productID, brandID: brandID}]
	m.mu.RUnlock()

	// bucket is never mutated after publication
	var out []entity.Price
	for _, p := range bucket {
		if p.Contains(at) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *PriceMemory) UpsertBatch(ctx context.Context, prices []entity.Price) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(prices) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byID := make(map[int64]entity.Price, len(m.byID)+len(prices))
	for id, p := range m.byID {
		byID[id] = p
	}
	for _, p := range prices {
		p.StartDate = entity.WallClock(p.StartDate)
		p.EndDate = entity.WallClock(p.EndDate)
		byID[p.ID] = p
	}

	byPair := make(map[pairKey][]entity.Price, len(m.byPair))
	for _, p := range byID {
		k := pairKey{productID: p.ProductID, brandID: p.BrandID}
		byPair[k] = append(byPair[k], p)
	}

	m.byID = byID
	m.byPair = byPair
	return nil
}

// Len returns the number of stored records.
func (m *PriceMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

func (m *PriceMemory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Package usecase は価格解決と価格レコード取り込みのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"time"

	"pricing_backend/internal/feature/pricing/domain"
	"pricing_backend/internal/feature/pricing/domain/entity"
)

// PriceRepository は価格レコードの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PriceRepository interface {
	// FindCandidates は productID と brandID が一致し、StartDate <= at <= EndDate を満たす
	// すべてのレコードを返します。返却順は保証されません。
	FindCandidates(ctx context.Context, productID, brandID int64, at time.Time) ([]entity.Price, error)
}

// PriceUsecase は指定時刻に適用される価格を決定します。
// 状態を持たないため、複数のゴルーチンから同時に呼び出せます。
type PriceUsecase struct {
	repo PriceRepository
}

// NewPriceUsecase は新しい PriceUsecase を作成します。
func NewPriceUsecase(repo PriceRepository) *PriceUsecase {
	return &PriceUsecase{repo: repo}
}

// GetApplicablePrice は productID / brandID の at 時点で適用される価格を1件返します。
// at は壁時計の値として扱い、タイムゾーンは無視します。
// 候補がない場合は *domain.PriceNotFoundError を返します。
func (u *PriceUsecase) GetApplicablePrice(ctx context.Context, productID, brandID int64, at time.Time) (entity.Price, error) {
	at = entity.WallClock(at)

	candidates, err := u.repo.FindCandidates(ctx, productID, brandID, at)
	if err != nil {
		return entity.Price{}, fmt.Errorf("find price candidates: %w", err)
	}

	winner, ok := SelectApplicable(candidates, productID, brandID, at)
	if !ok {
		return entity.Price{}, &domain.PriceNotFoundError{
			ProductID:       productID,
			BrandID:         brandID,
			ApplicationDate: at,
		}
	}
	return winner, nil
}

// SelectApplicable picks the winning record among candidates.
// Records that do not match the query are ignored, so a store that over-returns
// cannot change the outcome. The result is independent of the slice order.
// at is read as a wall clock, like the stored bounds.
func SelectApplicable(candidates []entity.Price, productID, brandID int64, at time.Time) (entity.Price, bool) {
	at = entity.WallClock(at)
	var (
		winner entity.Price
		found  bool
	)
	for _, c := range candidates {
		if c.ProductID != productID || c.BrandID != brandID || !c.Contains(at) {
			continue
		}
		if !found || c.Outranks(winner) {
			winner = c
			found = true
		}
	}
	return winner, found
}

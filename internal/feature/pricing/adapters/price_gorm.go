// Package adapters はpricingフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"pricing_backend/internal/feature/pricing/domain/entity"
	"pricing_backend/internal/feature/pricing/usecase"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// priceGorm はPriceRepositoryインターフェースのgorm実装です（PostgreSQL / SQLite）。
type priceGorm struct {
	db *gorm.DB
}

// PriceReadWriter はすべてのストア実装が満たす読み書きのインターフェースです。
type PriceReadWriter interface {
	usecase.PriceRepository
	usecase.PriceWriter
}

var _ PriceReadWriter = (*priceGorm)(nil)

// NewPriceRepository は指定されたDB接続でpriceGormリポジトリの新しいインスタンスを生成します。
func NewPriceRepository(db *gorm.DB) *priceGorm {
	return &priceGorm{db: db}
}

// PriceModel はpricesテーブルの行です。
// (product_id, brand_id) で絞り込んでから期間で範囲検索するための複合インデックスを持ちます。
type PriceModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false"`
	BrandID   int64           `gorm:"not null;index:idx_prices_lookup,priority:2"`
	StartDate time.Time       `gorm:"type:timestamp;not null;index:idx_prices_lookup,priority:3"`
	EndDate   time.Time       `gorm:"type:timestamp;not null;index:idx_prices_lookup,priority:4"`
	PriceList int64           `gorm:"not null"`
	ProductID int64           `gorm:"not null;index:idx_prices_lookup,priority:1"`
	Priority  int             `gorm:"not null;default:0"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Curr      string          `gorm:"size:3;not null"`
}

func (PriceModel) TableName() string {
	return "prices"
}

func toModel(e entity.Price) PriceModel {
	return PriceModel{
		ID:        e.ID,
		BrandID:   e.BrandID,
		StartDate: entity.WallClock(e.StartDate),
		EndDate:   entity.WallClock(e.EndDate),
		PriceList: e.PriceList,
		ProductID: e.ProductID,
		Priority:  e.Priority,
		Price:     e.Amount,
		Curr:      e.Currency,
	}
}

func toEntity(m PriceModel) entity.Price {
	return entity.Price{
		ID:        m.ID,
		BrandID:   m.BrandID,
		ProductID: m.ProductID,
		PriceList: m.PriceList,
		StartDate: entity.WallClock(m.StartDate),
		EndDate:   entity.WallClock(m.EndDate),
		Priority:  m.Priority,
		Amount:    m.Price,
		Currency:  m.Curr,
	}
}

// FindCandidates は (productID, brandID) が一致し、at を両端を含めて期間内に持つレコードを返します。
func (r *priceGorm) FindCandidates(ctx context.Context, productID, brandID int64, at time.Time) ([]entity.Price, error) {
	at = entity.WallClock(at)

	var rows []PriceModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND brand_id = ?", productID, brandID).
		Where("start_date <= ? AND end_date >= ?", at, at).
		Order("priority DESC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Price, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// UpsertBatch はIDをキーにレコードを挿入（または更新）します。
func (r *priceGorm) UpsertBatch(ctx context.Context, prices []entity.Price) error {
	if len(prices) == 0 {
		return nil
	}
	ms := make([]PriceModel, 0, len(prices))
	for _, e := range prices {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"brand_id", "start_date", "end_date", "price_list", "product_id", "priority", "price", "curr"}),
	}).Create(&ms).Error
}

// Ping は下位のDB接続の疎通を確認します。
func (r *priceGorm) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

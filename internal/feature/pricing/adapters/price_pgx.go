package adapters

import (
	"context"
	"fmt"
	"time"

	"pricing_backend/internal/feature/pricing/domain/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PricePgx はpgxpoolで直接SQLを発行するPriceRepository実装です。
// テーブル定義はPriceModelと同じで、gorm実装と同じテーブルを共有できます。
type PricePgx struct {
	pool *pgxpool.Pool
}

var _ PriceReadWriter = (*PricePgx)(nil)

func NewPricePgx(pool *pgxpool.Pool) *PricePgx {
	return &PricePgx{pool: pool}
}

const pgxSchema = `
CREATE TABLE IF NOT EXISTS prices (
  id         BIGINT PRIMARY KEY,
  brand_id   BIGINT NOT NULL,
  start_date TIMESTAMP NOT NULL,
  end_date   TIMESTAMP NOT NULL,
  price_list BIGINT NOT NULL,
  product_id BIGINT NOT NULL,
  priority   INTEGER NOT NULL DEFAULT 0,
  price      NUMERIC(10,2) NOT NULL,
  curr       VARCHAR(3) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_prices_lookup ON prices (product_id, brand_id, start_date, end_date);
`

// EnsureSchema はpricesテーブルとインデックスがなければ作成します。
func (r *PricePgx) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, pgxSchema); err != nil {
		return fmt.Errorf("ensure prices schema: %w", err)
	}
	return nil
}

// FindCandidates は (productID, brandID) が一致し、at を両端を含めて期間内に持つレコードを返します。
func (r *PricePgx) FindCandidates(ctx context.Context, productID, brandID int64, at time.Time) ([]entity.Price, error) {
	const q = `
SELECT id, brand_id, product_id, price_list, start_date, end_date, priority, price::text, curr
FROM prices
WHERE product_id = $1 AND brand_id = $2 AND start_date <= $3 AND end_date >= $3
ORDER BY priority DESC, id ASC;
`
	rows, err := r.pool.Query(ctx, q, productID, brandID, entity.WallClock(at))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Price
	for rows.Next() {
		var (
			p      entity.Price
			amount string
		)
		if err := rows.Scan(&p.ID, &p.BrandID, &p.ProductID, &p.PriceList, &p.StartDate, &p.EndDate, &p.Priority, &amount, &p.Currency); err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("price id=%d: parse amount %q: %w", p.ID, amount, err)
		}
		p.StartDate = entity.WallClock(p.StartDate)
		p.EndDate = entity.WallClock(p.EndDate)
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpsertBatch は1トランザクション内でバッチ送信し、全件成功した場合のみコミットします。
func (r *PricePgx) UpsertBatch(ctx context.Context, prices []entity.Price) error {
	if len(prices) == 0 {
		return nil
	}
	const q = `
INSERT INTO prices (id, brand_id, start_date, end_date, price_list, product_id, priority, price, curr)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9)
ON CONFLICT (id) DO UPDATE SET
  brand_id = EXCLUDED.brand_id,
  start_date = EXCLUDED.start_date,
  end_date = EXCLUDED.end_date,
  price_list = EXCLUDED.price_list,
  product_id = EXCLUDED.product_id,
  priority = EXCLUDED.priority,
  price = EXCLUDED.price,
  curr = EXCLUDED.curr;
`
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, p := range prices {
		batch.Queue(q, p.ID, p.BrandID, entity.WallClock(p.StartDate), entity.WallClock(p.EndDate),
			p.PriceList, p.ProductID, p.Priority, p.Amount.String(), p.Currency)
	}

	br := tx.SendBatch(ctx, batch)
	for _, p := range prices {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("upsert price id=%d: %w", p.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PricePgx) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

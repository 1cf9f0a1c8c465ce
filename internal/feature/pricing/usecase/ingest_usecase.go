package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"pricing_backend/internal/feature/pricing/domain"
	"pricing_backend/internal/feature/pricing/domain/entity"
	"pricing_backend/internal/shared/ratelimiter"
)

// PriceWriter は価格レコードを永続化するリポジトリのインターフェイスです。
type PriceWriter interface {
	UpsertBatch(ctx context.Context, prices []entity.Price) error
}

// IngestUsecase は外部から受け取った価格レコードを検証し、ストアに一括保存します。
type IngestUsecase struct {
	writer    PriceWriter
	chunkSize int
	limiter   ratelimiter.Limiter
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
// バッチは分割せず1回の UpsertBatch で保存します。
func NewIngestUsecase(writer PriceWriter) *IngestUsecase {
	return &IngestUsecase{writer: writer}
}

// NewChunkedIngestUsecase は chunkSize 件ずつ保存する IngestUsecase を作成します。
// limiter が nil でなければ、各チャンクの書き込み前に limiter.Wait を呼びます。
func NewChunkedIngestUsecase(writer PriceWriter, chunkSize int, limiter ratelimiter.Limiter) *IngestUsecase {
	return &IngestUsecase{writer: writer, chunkSize: chunkSize, limiter: limiter}
}

// Ingest はすべてのレコードを検証してから保存します。
// 1件でも不正なレコードがあればバッチ全体を破棄し、ストアには何も書き込みません。
// チャンク分割時に途中で書き込みが失敗した場合、それ以前のチャンクは保存済みのまま残ります。
func (iu *IngestUsecase) Ingest(ctx context.Context, prices []entity.Price) error {
	if len(prices) == 0 {
		return nil
	}
	if err := validateBatch(prices); err != nil {
		return err
	}

	size := iu.chunkSize
	if size <= 0 || size > len(prices) {
		size = len(prices)
	}

	written := 0
	for start := 0; start < len(prices); start += size {
		end := min(start+size, len(prices))
		if iu.limiter != nil {
			if err := iu.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("wait before chunk at %d: %w", start, err)
			}
		}
		if err := iu.writer.UpsertBatch(ctx, prices[start:end]); err != nil {
			slog.Error("failed to upsert price chunk", "offset", start, "written", written, "error", err)
			return fmt.Errorf("upsert prices: %w", err)
		}
		written = end
	}

	slog.Info("price records ingested", "count", written)
	return nil
}

func validateBatch(prices []entity.Price) error {
	seen := make(map[int64]struct{}, len(prices))
	for _, p := range prices {
		if err := domain.ValidatePrice(p); err != nil {
			slog.Warn("rejected price record", "id", p.ID, "error", err)
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return &domain.InvalidPriceError{ID: p.ID, Reason: "duplicate id in batch"}
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

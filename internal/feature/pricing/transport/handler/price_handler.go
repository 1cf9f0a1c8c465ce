// Package handler はpricingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pricing_backend/internal/feature/pricing/domain"
	"pricing_backend/internal/feature/pricing/domain/entity"
	"pricing_backend/internal/feature/pricing/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// PriceUsecase は適用価格を解決するユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PriceUsecase interface {
	GetApplicablePrice(ctx context.Context, productID, brandID int64, at time.Time) (entity.Price, error)
}

// PriceHandler は価格照会のHTTPリクエストを処理します。
type PriceHandler struct {
	uc  PriceUsecase
	now func() time.Time
}

// NewPriceHandler は新しい PriceHandler を作成します。
func NewPriceHandler(uc PriceUsecase) *PriceHandler {
	return &PriceHandler{uc: uc, now: time.Now}
}

// GetApplicablePrice は指定日時・商品・ブランドに適用される価格を返すAPIです。
//
// エンドポイント例:
// GET /api/prices?applicationDate=2020-06-14T10:00:00&productId=35455&brandId=1
//
// - パラメータの欠落・形式不正は400
// - 該当する価格がない場合は404
// - ストアのエラーは500
func (h *PriceHandler) GetApplicablePrice(c *gin.Context) {
	q, err := bindPriceQuery(c)
	if err != nil {
		slog.Warn("price query validation failed", "error", err, "remote_addr", c.ClientIP())
		h.writeError(c, http.StatusBadRequest, dto.ErrorBadRequest, err.Error())
		return
	}

	price, err := h.uc.GetApplicablePrice(c.Request.Context(), q.ProductID, q.BrandID, q.ApplicationDate)
	if err != nil {
		var nf *domain.PriceNotFoundError
		if errors.As(err, &nf) {
			slog.Info("no applicable price", "product_id", q.ProductID, "brand_id", q.BrandID, "application_date", q.ApplicationDate)
			h.writeError(c, http.StatusNotFound, dto.ErrorPriceNotFound, nf.Error())
			return
		}
		slog.Error("price resolution failed", "error", err, "product_id", q.ProductID, "brand_id", q.BrandID)
		h.writeError(c, http.StatusInternalServerError, dto.ErrorInternalServer, "An unexpected error occurred: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewPriceResponse(price))
}

func (h *PriceHandler) writeError(c *gin.Context, status int, title, message string) {
	c.JSON(status, dto.NewErrorResponse(title, message, h.now()))
}

// Package dto defines data transfer objects for the pricing HTTP API.
package dto

import (
	"encoding/json"

	"pricing_backend/internal/feature/pricing/domain/entity"
)

// DateLayout is the external notation of price validity bounds (yyyy-MM-dd-HH.mm.ss).
const DateLayout = "2006-01-02-15.04.05"

// PriceResponse is the projection of the applicable price returned to clients.
type PriceResponse struct {
	ProductID int64       `json:"productId"`
	BrandID   int64       `json:"brandId"`
	PriceList int64       `json:"priceList"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Price     json.Number `json:"price"` // 2桁固定の数値リテラル（例: 35.50）
	Currency  string      `json:"currency"`
}

// NewPriceResponse projects p field by field.
func NewPriceResponse(p entity.Price) PriceResponse {
	return PriceResponse{
		ProductID: p.ProductID,
		BrandID:   p.BrandID,
		PriceList: p.PriceList,
		StartDate: p.StartDate.Format(DateLayout),
		EndDate:   p.EndDate.Format(DateLayout),
		Price:     json.Number(p.Amount.StringFixed(2)),
		Currency:  p.Currency,
	}
}

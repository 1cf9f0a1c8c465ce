// Package seed provides the reference price data set and a CSV reader for bulk loads.
package seed

import (
	"time"

	"pricing_backend/internal/feature/pricing/domain/entity"

	"github.com/shopspring/decimal"
)

// ReferenceProductID and ReferenceBrandID identify the product/brand pair of the reference data set.
const (
	ReferenceProductID int64 = 35455
	ReferenceBrandID   int64 = 1
)

// Reference returns the four overlapping rate records of product 35455 / brand 1.
// A fresh slice is returned on every call.
func Reference() []entity.Price {
	return []entity.Price{
		{
			ID: 1, BrandID: ReferenceBrandID, ProductID: ReferenceProductID, PriceList: 1,
			StartDate: date(2020, 6, 14, 0, 0, 0), EndDate: date(2020, 12, 31, 23, 59, 59),
			Priority: 0, Amount: decimal.RequireFromString("35.50"), Currency: "EUR",
		},
		{
			ID: 2, BrandID: ReferenceBrandID, ProductID: ReferenceProductID, PriceList: 2,
			StartDate: date(2020, 6, 14, 15, 0, 0), EndDate: date(2020, 6, 14, 18, 30, 0),
			Priority: 1, Amount: decimal.RequireFromString("25.45"), Currency: "EUR",
		},
		{
			ID: 3, BrandID: ReferenceBrandID, ProductID: ReferenceProductID, PriceList: 3,
			StartDate: date(2020, 6, 15, 0, 0, 0), EndDate: date(2020, 6, 15, 11, 0, 0),
			Priority: 1, Amount: decimal.RequireFromString("30.50"), Currency: "EUR",
		},
		{
			ID: 4, BrandID: ReferenceBrandID, ProductID: ReferenceProductID, PriceList: 4,
			StartDate: date(2020, 6, 15, 16, 0, 0), EndDate: date(2020, 12, 31, 23, 59, 59),
			Priority: 1, Amount: decimal.RequireFromString("38.95"), Currency: "EUR",
		},
	}
}

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

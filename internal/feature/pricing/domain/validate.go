package domain

import (
	"pricing_backend/internal/feature/pricing/domain/entity"
)

// ValidatePrice checks the integrity rules a record must satisfy before it is stored:
// StartDate <= EndDate, a three letter upper-case currency code and a non-negative amount.
func ValidatePrice(p entity.Price) error {
	if p.StartDate.After(p.EndDate) {
		return &InvalidPriceError{ID: p.ID, Reason: "start date is after end date"}
	}
	if !isCurrencyCode(p.Currency) {
		return &InvalidPriceError{ID: p.ID, Reason: "currency must be a 3-letter ISO 4217 code"}
	}
	if p.Amount.IsNegative() {
		return &InvalidPriceError{ID: p.ID, Reason: "amount must not be negative"}
	}
	return nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

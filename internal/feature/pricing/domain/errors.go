// Package domain defines domain-level errors for the pricing feature.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// FormatApplicationDate renders an instant the way it appears in error messages:
// ISO local date-time with seconds only when non-zero and the fraction
// trimmed to 3, 6 or 9 digits.
func FormatApplicationDate(t time.Time) string {
	s := t.Format("2006-01-02T15:04")
	sec, nsec := t.Second(), t.Nanosecond()
	if sec == 0 && nsec == 0 {
		return s
	}
	s += fmt.Sprintf(":%02d", sec)
	switch {
	case nsec == 0:
	case nsec%1_000_000 == 0:
		s += fmt.Sprintf(".%03d", nsec/1_000_000)
	case nsec%1_000 == 0:
		s += fmt.Sprintf(".%06d", nsec/1_000)
	default:
		s += fmt.Sprintf(".%09d", nsec)
	}
	return s
}

var (
	// ErrPriceNotFound indicates that no price record applies to the requested
	// product, brand and instant. PriceNotFoundError matches it via errors.Is.
	ErrPriceNotFound = errors.New("no applicable price found")

	// ErrInvalidPrice indicates a price record that must not be stored.
	// InvalidPriceError matches it via errors.Is.
	ErrInvalidPrice = errors.New("invalid price record")
)

// PriceNotFoundError carries the query that produced no candidate so that
// the transport layer can render a descriptive message.
type PriceNotFoundError struct {
	ProductID       int64
	BrandID         int64
	ApplicationDate time.Time
}

func (e *PriceNotFoundError) Error() string {
	return fmt.Sprintf("No applicable price found for productId=%d, brandId=%d, applicationDate=%s",
		e.ProductID, e.BrandID, FormatApplicationDate(e.ApplicationDate))
}

// Is lets errors.Is(err, ErrPriceNotFound) succeed.
func (e *PriceNotFoundError) Is(target error) bool {
	return target == ErrPriceNotFound
}

// InvalidPriceError reports why a record was rejected at ingestion.
type InvalidPriceError struct {
	ID     int64
	Reason string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price record id=%d: %s", e.ID, e.Reason)
}

func (e *InvalidPriceError) Is(target error) bool {
	return target == ErrInvalidPrice
}

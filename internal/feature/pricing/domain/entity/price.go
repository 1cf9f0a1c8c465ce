// Package entity defines the domain models for the pricing feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is a time-bounded, prioritized price for a product of a brand.
// StartDate and EndDate are naive wall-clock instants; both bounds are inclusive.
type Price struct {
	ID        int64           // unique record key
	BrandID   int64           // owning brand
	ProductID int64           // product the price applies to
	PriceList int64           // rate plan the record came from
	StartDate time.Time       // inclusive lower bound of validity
	EndDate   time.Time       // inclusive upper bound of validity
	Priority  int             // higher wins when intervals overlap
	Amount    decimal.Decimal // price value
	Currency  string          // ISO 4217 code (e.g. "EUR")
}

// Contains reports whether at lies within [StartDate, EndDate].
// A record with an inverted range never contains any instant.
func (p Price) Contains(at time.Time) bool {
	return !at.Before(p.StartDate) && !at.After(p.EndDate)
}

// Outranks reports whether p wins over other when both apply.
// Higher priority wins; on equal priority the lower ID wins so the choice
// does not depend on the order a store returns its rows in.
func (p Price) Outranks(other Price) bool {
	if p.Priority != other.Priority {
		return p.Priority > other.Priority
	}
	return p.ID < other.ID
}

// WallClock drops the location of t and keeps its wall-clock fields, returning
// the same reading in UTC. Prices have no time zone; every instant that reaches
// a store goes through WallClock first.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"pricing_backend/internal/feature/pricing/domain/entity"

	"github.com/shopspring/decimal"
)

// csvColumns is the expected header, matching the column order of the PRICES table.
var csvColumns = []string{"id", "brand_id", "start_date", "end_date", "price_list", "product_id", "priority", "price", "curr"}

// dateLayouts are tried in order; the first is the notation used by the PRICES data set.
var dateLayouts = []string{
	"2006-01-02-15.04.05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ReadCSV parses price records from r. The first row must be the header
// id,brand_id,start_date,end_date,price_list,product_id,priority,price,curr
// (case-insensitive). Dates are naive local times and are stored as UTC wall clock.
func ReadCSV(r io.Reader) ([]entity.Price, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(csvColumns)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv: missing header")
		}
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	for i, col := range csvColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return nil, fmt.Errorf("csv: column %d: expected %q, got %q", i+1, col, header[i])
		}
	}

	var out []entity.Price
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}
		p, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseRecord(rec []string) (entity.Price, error) {
	var (
		p   entity.Price
		err error
	)
	if p.ID, err = parseInt(rec[0], "id"); err != nil {
		return p, err
	}
	if p.BrandID, err = parseInt(rec[1], "brand_id"); err != nil {
		return p, err
	}
	if p.StartDate, err = ParseDate(rec[2]); err != nil {
		return p, fmt.Errorf("start_date: %w", err)
	}
	if p.EndDate, err = ParseDate(rec[3]); err != nil {
		return p, fmt.Errorf("end_date: %w", err)
	}
	if p.PriceList, err = parseInt(rec[4], "price_list"); err != nil {
		return p, err
	}
	if p.ProductID, err = parseInt(rec[5], "product_id"); err != nil {
		return p, err
	}
	priority, err := parseInt(rec[6], "priority")
	if err != nil {
		return p, err
	}
	p.Priority = int(priority)
	if p.Amount, err = decimal.NewFromString(strings.TrimSpace(rec[7])); err != nil {
		return p, fmt.Errorf("price: %w", err)
	}
	p.Currency = strings.TrimSpace(rec[8])
	return p, nil
}

func parseInt(s, field string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}

// ParseDate parses a naive date-time in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", s)
}

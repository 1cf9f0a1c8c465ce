package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pricing_backend/internal/feature/pricing/domain/entity"

	"github.com/gin-gonic/gin"
)

// InvalidInputError はクエリパラメータの欠落または形式不正を表します。
// リゾルバーに到達する前に400として返却されます。
type InvalidInputError struct {
	Param   string
	Missing bool
	Reason  string
}

func (e *InvalidInputError) Error() string {
	if e.Missing {
		return fmt.Sprintf("Required parameter '%s' is missing", e.Param)
	}
	return fmt.Sprintf("Invalid parameter '%s': %s", e.Param, e.Reason)
}

// naiveLayouts はタイムゾーンを持たない ISO 8601 日時の受け付け形式です。
var naiveLayouts = []string{
	"2006-01-02T15:04:05", // 小数秒も受け付ける
	"2006-01-02T15:04",
}

// parseApplicationDate は ISO 8601 の日時を壁時計の値として解釈します。
// オフセット付きの値はオフセットを捨て、表記された時刻をそのまま使います。
func parseApplicationDate(s string) (time.Time, error) {
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return entity.WallClock(t), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as an ISO 8601 date-time", s)
}

func requiredQuery(c *gin.Context, name string) (string, error) {
	v, ok := c.GetQuery(name)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", &InvalidInputError{Param: name, Missing: true}
	}
	return v, nil
}

func int64Query(c *gin.Context, name string) (int64, error) {
	v, err := requiredQuery(c, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &InvalidInputError{Param: name, Reason: fmt.Sprintf("%q is not a valid integer", v)}
	}
	return n, nil
}

// priceQuery は GET /api/prices のパース済みパラメータです。
type priceQuery struct {
	ApplicationDate time.Time
	ProductID       int64
	BrandID         int64
}

// bindPriceQuery は applicationDate, productId, brandId の順に検証し、最初のエラーを返します。
func bindPriceQuery(c *gin.Context) (priceQuery, error) {
	var q priceQuery

	raw, err := requiredQuery(c, "applicationDate")
	if err != nil {
		return q, err
	}
	if q.ApplicationDate, err = parseApplicationDate(raw); err != nil {
		return q, &InvalidInputError{Param: "applicationDate", Reason: err.Error()}
	}
	if q.ProductID, err = int64Query(c, "productId"); err != nil {
		return q, err
	}
	if q.BrandID, err = int64Query(c, "brandId"); err != nil {
		return q, err
	}
	return q, nil
}

package writer

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DecimalCell formats d, or returns "" when d is nil.
func DecimalCell(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// TimeCell formats t as RFC 3339 in UTC, or returns "" for the zero time.
func TimeCell(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// IntCell formats n in base 10.
func IntCell(n int) string {
	return strconv.Itoa(n)
}

// Package money handles monetary amounts for the bank's single supported
// currency (USD). Amounts travel as integer cents end to end; floats only
// appear at the API boundary.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in cents.
type Amount = int64

// ErrInvalidAmount is returned for amounts that are not positive numbers with
// at most two decimal places.
var ErrInvalidAmount = errors.New("enter a valid amount greater than zero")

// ParseAmount converts a user-entered decimal string such as "100.50" into
// cents.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromFloat(f)
}

// FromFloat converts a dollar amount into cents, rejecting non-positive
// values, sub-cent precision, and values too large to represent as cents.
func FromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, ErrInvalidAmount
	}
	cents := math.Round(f * 100)
	// float64(math.MaxInt64) is 2^63; any rounded value at or above it
	// would overflow the int64 conversion.
	if cents >= float64(math.MaxInt64) {
		return 0, ErrInvalidAmount
	}
	if math.Abs(f*100-cents) > 1e-6 {
		return 0, ErrInvalidAmount
	}
	return Amount(cents), nil
}

// ToFloat converts cents back into a dollar amount for API responses.
func ToFloat(a Amount) float64 {
	return float64(a) / 100
}

// FormatUSD renders cents as "$1,234.56"; negatives as "-$1,234.56".
func FormatUSD(a Amount) string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(a/100), a%100)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

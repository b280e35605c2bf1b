package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"100.50", 10050, false},
		{"0.01", 1, false},
		{"1234567.89", 123456789, false},
		{"7", 700, false},
		{" 25.00 ", 2500, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"1.005", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"1e20", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.05", FormatUSD(5))
	assert.Equal(t, "$1.00", FormatUSD(100))
	assert.Equal(t, "$100.50", FormatUSD(10050))
	assert.Equal(t, "$1,234.56", FormatUSD(123456))
	assert.Equal(t, "$12,345,678.90", FormatUSD(1234567890))
	assert.Equal(t, "-$9.99", FormatUSD(-999))
}

func TestFromFloat_RejectsOverflow(t *testing.T) {
	for _, f := range []float64{1e20, math.MaxFloat64, float64(math.MaxInt64)} {
		a, err := FromFloat(f)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %v", f)
		assert.Zero(t, a, "input %v", f)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	a, err := FromFloat(100.5)
	assert.NoError(t, err)
	assert.Equal(t, Amount(10050), a)
	assert.InDelta(t, 100.5, ToFloat(a), 1e-9)
}

package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"10", 1000},
			{"10.5", 1050},
			{"10.15", 1015},
			{"0.01", 1},
			{"0", 0},
			{"1000.00", 100000},
			{"9999999999.99", 999999999999},
			{" 25.00 ", 2500},
			{"7.", 700},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := ParseAmount("-10.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Invalid formats", func(t *testing.T) {
		testCases := []string{
			"",
			"   ",
			"abc",
			"10.123",
			"10.00.00",
			"$10.00",
			"10,50",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := ParseAmount(tc)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestFormatCents(t *testing.T) {
	testCases := []struct {
		name     string
		cents    int64
		expected string
	}{
		{"Whole amount", 1000, "10.00"},
		{"With cents", 1015, "10.15"},
		{"Below one unit", 50, "0.50"},
		{"Single cent", 1, "0.01"},
		{"Zero", 0, "0.00"},
		{"Negative", -50, "-0.50"},
		{"Large negative", -123456, "-1234.56"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCents(tc.cents))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	cents, err := ParseAmount("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", FormatCents(cents))
}

func TestMulOdds(t *testing.T) {
	testCases := []struct {
		name     string
		stake    int64
		odds     string
		expected int64
	}{
		{"Even odds", 1000, "2.00", 2000},
		{"Typical favourite", 5000, "1.85", 9250},
		{"Rounds half up", 1001, "1.85", 1852},
		{"Underdog", 2500, "3.40", 8500},
		{"Odds of one", 1000, "1.00", 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			odds, err := decimal.NewFromString(tc.odds)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, MulOdds(tc.stake, odds))
		})
	}
}

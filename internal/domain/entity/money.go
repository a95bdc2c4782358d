package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed
// for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a string amount and converts it to integer
// minor units (cents). The conversion is purely string based so binary
// floating point never touches a monetary value:
// - "10"     -> 1000
// - "10.5"   -> 1050
// - "10.15"  -> 1015
// Negative amounts, more than two decimal places and malformed numbers
// are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// FormatCents converts integer minor units to a decimal string with
// exactly two fraction digits:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
// - -50  becomes "-0.50"
func FormatCents(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// MulOdds multiplies a stake in cents by a decimal odds value and
// returns the payout in cents, rounded half-up to the nearest cent.
// The odds value is frozen by the caller at placement time.
func MulOdds(stakeCents int64, odds decimal.Decimal) int64 {
	return decimal.NewFromInt(stakeCents).Mul(odds).Round(0).IntPart()
}

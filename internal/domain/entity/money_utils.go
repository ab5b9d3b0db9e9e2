package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
)

// DefaultMinorUnitsPerCredit is the price of one credit in the smallest currency unit.
// One credit costs one currency unit, so 100 paise.
const DefaultMinorUnitsPerCredit int64 = 100

// DefaultCurrency is the only currency the engine charges in
const DefaultCurrency = "INR"

// CreditsToMinorUnits computes the amount to charge for a credit quantity
func CreditsToMinorUnits(credits, minorUnitsPerCredit int64) (int64, error) {
	if credits <= 0 {
		return 0, errs.ErrInvalidCredits
	}
	if minorUnitsPerCredit <= 0 {
		return 0, fmt.Errorf("%w: minor units per credit must be positive", errs.ErrInternalServer)
	}
	if credits > math.MaxInt64/minorUnitsPerCredit {
		return 0, errs.ErrCreditsTooLarge
	}
	return credits * minorUnitsPerCredit, nil
}

// MinorUnitsToString converts an integer minor-unit amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func MinorUnitsToString(amount int64) string {
	isNegative := amount < 0
	if isNegative {
		amount = -amount
	}

	amountStr := fmt.Sprintf("%d", amount)

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

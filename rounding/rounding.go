package rounding

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// probeDigits is the number of fractional digits inspected for leading zeros
	probeDigits = 15

	// significantDigits are kept after the leading run of fractional zeros
	significantDigits = 2
)

// Round keeps two significant fractional digits after the leading run of zeros of the
// fractional part: 68000.1234 -> 68000.12, 0.0157 -> 0.016, 0.000000000001856 -> 0.0000000000019.
//
// Rounding is done on the exact binary value of the float, so 0.155 (stored as
// 0.15499999...) rounds to 0.15.
func Round(price float64) decimal.Decimal {
	probe := strconv.FormatFloat(price, 'f', probeDigits, 64)
	places := LeadingFractionZeros(probe) + significantDigits

	// Reparse the probe so digits beyond the 15th never influence the result
	value, err := strconv.ParseFloat(probe, 64)
	if err != nil {
		return decimal.Zero
	}

	rounded, err := decimal.NewFromString(strconv.FormatFloat(value, 'f', places, 64))
	if err != nil {
		return decimal.Zero
	}
	return rounded
}

// RoundNullable rounds a price that the API may have left null. A nil price is 0.
func RoundNullable(price *float64) decimal.Decimal {
	if price == nil {
		return decimal.Zero
	}
	return Round(*price)
}

// LeadingFractionZeros counts the zeros immediately following the decimal point of a
// formatted number, before the first non-zero digit
func LeadingFractionZeros(formatted string) int {
	dot := strings.IndexByte(formatted, '.')
	if dot < 0 {
		return 0
	}

	zeros := 0
	for _, c := range formatted[dot+1:] {
		if c != '0' {
			break
		}
		zeros++
	}
	return zeros
}

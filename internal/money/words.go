package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OverflowMarker is returned for amounts outside the supported range.
// The words renderer covers at most 9 digits (up to 99 crore); anything
// beyond that fails closed with this marker instead of truncating.
const OverflowMarker = "overflow"

// maxWordsAmount is the first amount the renderer cannot express (10^9).
const maxWordsAmount = 1_000_000_000

var onesWords = [20]string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tensWords = [10]string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}

// Words converts a whole currency amount into its English words form using
// the Indian numbering scale (crore 10^7, lakh 10^5, thousand 10^3, hundred
// 10^2), upper-cased and suffixed with "ONLY". This is the legal
// amount-in-words line on a tax invoice, so the exact wording matters:
// "AND" joins only the final tens/units group to a non-empty higher part,
// and zero-valued groups contribute nothing.
//
// The domain is 0 <= n < 10^9; anything outside returns OverflowMarker.
func Words(n int64) string {
	if n < 0 || n >= maxWordsAmount {
		return OverflowMarker
	}
	if n == 0 {
		return "ZERO ONLY"
	}

	crore := n / 10_000_000
	lakh := (n / 100_000) % 100
	thousand := (n / 1_000) % 100
	hundred := (n / 100) % 10
	units := n % 100

	parts := make([]string, 0, 6)
	if crore != 0 {
		parts = append(parts, twoDigitWords(crore)+" CRORE")
	}
	if lakh != 0 {
		parts = append(parts, twoDigitWords(lakh)+" LAKH")
	}
	if thousand != 0 {
		parts = append(parts, twoDigitWords(thousand)+" THOUSAND")
	}
	if hundred != 0 {
		parts = append(parts, onesWords[hundred]+" HUNDRED")
	}
	if units != 0 {
		if len(parts) > 0 {
			parts = append(parts, "AND")
		}
		parts = append(parts, twoDigitWords(units))
	}
	parts = append(parts, "ONLY")

	return strings.Join(parts, " ")
}

// AmountInWords rounds an amount to the nearest whole AED and renders the
// legal amount-in-words line, e.g. "AED TWO HUNDRED AND TEN ONLY".
func AmountInWords(amount decimal.Decimal) string {
	words := Words(amount.Round(0).IntPart())
	if words == OverflowMarker {
		return OverflowMarker
	}
	return Currency + " " + words
}

func twoDigitWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}

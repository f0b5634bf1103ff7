// Package currency formats USD amounts for chart labels and reports.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits the way US readers expect ("1,234,567").
var printer = message.NewPrinter(language.AmericanEnglish)

// USD formats v as whole dollars, truncating cents: 152345.9 -> "$152,345".
// Negative amounts keep their sign in front of the symbol: "-$3,000".
func USD(v float64) string {
	n := int64(v)
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

// SignedUSD is like USD but always carries a sign: "+$28,000", "-$3,000".
// Zero is rendered as "+$0".
func SignedUSD(v float64) string {
	if int64(v) < 0 {
		return USD(v)
	}
	return "+" + USD(v)
}

// RoundThousand rounds v to the nearest multiple of 1000.
// Exact halves go to the even thousand: 28500 -> 28000, 29500 -> 30000.
func RoundThousand(v float64) float64 {
	return math.RoundToEven(v/1000) * 1000
}

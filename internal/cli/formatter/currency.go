package formatter

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrencySymbol is the rupee prefix used by the dashboard.
const DefaultCurrencySymbol = "Rs"

var (
	currencySymbol = DefaultCurrencySymbol
	// Grouping is fixed to English regardless of the host locale.
	amountPrinter = message.NewPrinter(language.English)
)

// SetCurrencySymbol changes the prefix used by Currency and CurrencyCompact.
// An empty symbol restores the default.
func SetCurrencySymbol(symbol string) {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	currencySymbol = symbol
}

// Currency renders a whole amount with thousands grouping: "Rs 205,000".
// Negative amounts carry the sign before the symbol.
func Currency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + currencySymbol + " " + amountPrinter.Sprintf("%d", amount)
}

var compactSuffixes = []string{"", "K", "M", "B", "T"}

// CurrencyCompact renders an abbreviated amount rounded half away from zero
// to one fraction digit: "Rs 205K", "Rs 1.5M", "Rs 950". A value that rounds
// up to 1000 moves to the next suffix, so 999,999 is "Rs 1M".
func CurrencyCompact(amount int64) string {
	sign := ""
	v := float64(amount)
	if v < 0 {
		sign = "-"
		v = -v
	}

	idx := 0
	for v >= 1000 && idx < len(compactSuffixes)-1 {
		v /= 1000
		idx++
	}
	v = roundTenths(v)
	if v >= 1000 && idx < len(compactSuffixes)-1 {
		v = roundTenths(v / 1000)
		idx++
	}
	return fmt.Sprintf("%s%s %s%s", sign, currencySymbol, humanize.FtoaWithDigits(v, 1), compactSuffixes[idx])
}

func roundTenths(v float64) float64 {
	return math.Round(v*10) / 10
}

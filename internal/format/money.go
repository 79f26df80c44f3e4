package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// Price formats an amount in rupees with two decimals, e.g. ₹1,250.00.
func Price(v float64) string {
	return CurrencySymbol + printer.Sprintf("%.2f", v)
}

// Discount formats a whole-number percentage off, e.g. "20% OFF".
// Zero or negative values render as "".
func Discount(pct int) string {
	if pct <= 0 {
		return ""
	}
	return fmt.Sprintf("%d%% OFF", pct)
}

// Rating formats a star rating with one decimal, e.g. "★ 4.5".
func Rating(v float64) string {
	return fmt.Sprintf("★ %.1f", v)
}

package util

import "strconv"

// FormatPrice renders a price with the configured currency symbol the way
// catalog cards show it, e.g. "Rs.499" or "Rs.499.50".
func FormatPrice(symbol string, amount float64) string {
	return symbol + strconv.FormatFloat(amount, 'f', -1, 64)
}

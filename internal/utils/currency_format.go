package utils

import "github.com/shopspring/decimal"

// AmountToInt64 converts a monetary amount to a plain integer for export.
// Tally amounts are always exact integers (integer denominations times
// integer counts), so the integer part carries the full value.
func AmountToInt64(amount decimal.Decimal) int64 {
	return amount.IntPart()
}

// FormatAmount renders a monetary amount with no decimal places.
// Example: 1200 -> "1200".
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(0).String()
}

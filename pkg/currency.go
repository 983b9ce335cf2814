package pkg

import "fmt"

// FormatCurrency renders a monetary amount as a two-decimal string ("350.00").
// All API responses carry money as strings to avoid client-side float drift.
func FormatCurrency(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatCurrencyOptional keeps nil for unset amounts (tax not set vs tax = 0).
func FormatCurrencyOptional(v *float64) *string {
	if v == nil {
		return nil
	}
	s := FormatCurrency(*v)
	return &s
}

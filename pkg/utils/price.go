package utils

import "strconv"

// FormatPrice renders a price the way the storefront shows it: no trailing
// zeros, so 75 -> "75" and 29.99 -> "29.99".
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

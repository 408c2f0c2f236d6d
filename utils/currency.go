package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatPrice memformat harga dalam Rupee, contoh: 299 -> "₹299", 1299.5 -> "₹1,299.50"
func FormatPrice(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	amount = math.Round(amount*100) / 100
	integer := math.Floor(amount)
	cents := int(math.Round((amount - integer) * 100))

	digits := fmt.Sprintf("%.0f", integer)

	// Tambahkan pemisah ribuan
	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	result := sign + "₹" + strings.Join(groups, ",")
	if cents > 0 {
		result += fmt.Sprintf(".%02d", cents)
	}
	return result
}

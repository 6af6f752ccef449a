package utils

import (
	"fmt"
	"math"
	"strings"
)

// Round2 membulatkan ke 2 digit desimal untuk display. Total internal
// tidak pernah dibulatkan sebelum ditampilkan.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatCurrency memformat angka ke format mata uang Rupiah
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return strings.Join(result, ".") + "," + decimalPart
}

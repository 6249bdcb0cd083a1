package validation

import (
	"strings"

	"cleaning-quote/internal/order"
)

// NormalizePhone strips separators and rewrites a +81 prefix to the
// domestic leading zero.
func NormalizePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	international := strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "＋")

	digits := order.Digits(trimmed)
	if international {
		if !strings.HasPrefix(digits, "81") {
			return "+" + digits
		}
		digits = "0" + strings.TrimPrefix(digits, "81")
	}
	return digits
}

var fakeNumbers = map[string]bool{
	"0000000000":  true,
	"00000000000": true,
	"0123456789":  true,
	"01234567890": true,
}

// IsValidPhone accepts domestic Japanese numbers of 10 or 11 digits.
func IsValidPhone(phone string) bool {
	n := NormalizePhone(phone)
	if len(n) < 10 || len(n) > 11 {
		return false
	}
	if n[0] != '0' || n[1] == '0' {
		return false
	}
	return !fakeNumbers[n]
}

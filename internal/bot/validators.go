package bot

import (
	"strings"
	"unicode"
)

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizePhoneNumber reduces a phone number to +<digits>. Ten-digit
// numbers without a country code are treated as North American.
func NormalizePhoneNumber(phone string) string {
	cleaned := digitsOnly(phone)

	if len(cleaned) == 10 && !strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "+1" + cleaned
	}
	if cleaned == "" {
		return ""
	}
	return "+" + cleaned
}

func IsValidPhoneNumber(phone string) bool {
	cleaned := digitsOnly(phone)

	if len(cleaned) < 10 || len(cleaned) > 15 {
		return false
	}

	badNumbers := map[string]bool{
		"0000000000": true,
		"1111111111": true,
		"1234567890": true,
		"9999999999": true,
		"0123456789": true,
	}
	if badNumbers[cleaned] || badNumbers[strings.TrimPrefix(cleaned, "1")] {
		return false
	}

	trimmed := strings.TrimSpace(phone)
	return strings.HasPrefix(trimmed, "+") || unicode.IsDigit(rune(trimmed[0])) || trimmed[0] == '('
}

package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// IsValidPhone accepts exactly ten ASCII digits.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// SanitizePhone drops everything that is not an ASCII digit.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

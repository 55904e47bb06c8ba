package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR formats an amount with Indian digit grouping.
// Example: 123456.5 -> "₹1,23,456.50"
func FormatINR(amount decimal.Decimal) string {
	return "₹" + groupINR(amount)
}

// FormatRupees is FormatINR without the rupee sign, for outputs limited to
// Latin-1 such as the PDF core fonts.
func FormatRupees(amount decimal.Decimal) string {
	return "Rs. " + groupINR(amount)
}

func groupINR(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	parts := strings.SplitN(amount.StringFixed(2), ".", 2)
	integerPart, decimalPart := parts[0], parts[1]

	// last three digits, then groups of two
	if len(integerPart) > 3 {
		head := integerPart[:len(integerPart)-3]
		tail := integerPart[len(integerPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		integerPart = strings.Join(append(groups, tail), ",")
	}

	return fmt.Sprintf("%s%s.%s", sign, integerPart, decimalPart)
}

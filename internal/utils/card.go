package utils

import "strings"

// MaskCardLabel builds the display label stored on a confirmation, e.g.
// "Credit Card (xxxx-3486)". Spaces in the card number are ignored.
func MaskCardLabel(method, cardNumber string) string {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if len(digits) < 4 {
		return method
	}
	return method + " (xxxx-" + digits[len(digits)-4:] + ")"
}

// DetectCardType identifies the card scheme from the leading digits.
// Returns "" when the number matches no known scheme.
func DetectCardType(cardNumber string) string {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "4"):
		return "visa"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "mastercard"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "amex"
	case strings.HasPrefix(digits, "6"):
		return "discover"
	default:
		return ""
	}
}

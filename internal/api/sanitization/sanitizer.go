package sanitization

import (
	"strings"
)

// MaxFieldLength is the hard cap applied to every sanitized field.
const MaxFieldLength = 10000

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeString normalizes a user-supplied text field: trims surrounding
// whitespace, strips angle brackets, and truncates to MaxFieldLength
// characters. This is tag stripping, not HTML sanitization; fields are
// forwarded as JSON, never rendered.
func SanitizeString(input string) string {
	if input == "" {
		return ""
	}

	safe := strings.TrimSpace(input)
	safe = angleBrackets.Replace(safe)

	if runes := []rune(safe); len(runes) > MaxFieldLength {
		safe = string(runes[:MaxFieldLength])
	}

	return safe
}

// SanitizeEmail normalizes an email address: the usual field sanitization
// plus lowercasing, trimmed again in case stripping exposed whitespace.
func SanitizeEmail(input string) string {
	email := SanitizeString(input)
	email = strings.ToLower(email)
	return strings.TrimSpace(email)
}

package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeString trims, strips tags and escapes HTML entities
func SanitizeString(input string) string {
	trimmed := strings.TrimSpace(input)
	stripped := htmlTagPattern.ReplaceAllString(trimmed, "")

	return html.EscapeString(removeControlChars(stripped))
}

// SanitizeCode normalizes identifiers such as shipment codes: trimmed, upper-case, no spaces
func SanitizeCode(input string) string {
	var result strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func removeControlChars(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

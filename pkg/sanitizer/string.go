package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses whitespace runs into a single space and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine joins multi-line input into one line.
func SingleLine(s string) string {
	return NormalizeWhitespace(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s))
}

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// RemoveControlSequences removes ANSI escape sequences and control characters,
// keeping newlines, carriage returns and tabs.
func RemoveControlSequences(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, ansiRegex.ReplaceAllString(s, ""))
}

// LimitLength truncates s to at most maxLength runes. A non-positive limit
// disables truncation.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

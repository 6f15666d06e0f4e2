package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sanitize/pkg/sanitizer"
)

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{name: "trim", fn: sanitizer.Trim, input: "  a b  ", expected: "a b"},
		{name: "normalize whitespace", fn: sanitizer.NormalizeWhitespace, input: " a \t\n b  ", expected: "a b"},
		{name: "single line", fn: sanitizer.SingleLine, input: "line1\r\nline2\nline3", expected: "line1 line2 line3"},
		{name: "remove null bytes", fn: sanitizer.RemoveNullBytes, input: "a\x00b", expected: "ab"},
		{name: "remove ansi sequences", fn: sanitizer.RemoveControlSequences, input: "\x1b[31mred\x1b[0m", expected: "red"},
		{name: "keeps newlines and tabs", fn: sanitizer.RemoveControlSequences, input: "a\n\tb\x07", expected: "a\n\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.fn(tt.input))
		})
	}
}

func TestLimitLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héll", sanitizer.LimitLength("héllo", 4))
	assert.Equal(t, "héllo", sanitizer.LimitLength("héllo", 10))
	assert.Equal(t, "héllo", sanitizer.LimitLength("héllo", 0), "non-positive limit disables truncation")
}

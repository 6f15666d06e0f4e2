package sanitizes

import (
	"strings"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
)

const methodPrefix = "sanitize_"

// MethodName derives the sanitizer name from the ordered field set:
// MethodName("title", "body") == "sanitize_title_body". Order matters.
func MethodName(fields ...string) string {
	return methodPrefix + strings.Join(fields, "_")
}

// HookName returns the lifecycle hook a sanitizer declared with point attaches
// to. The zero Point maps to before_save.
func HookName(point lifecycle.Point) string {
	if point == "" {
		point = lifecycle.Save
	}
	return point.Hook()
}

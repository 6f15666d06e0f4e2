package sanitizes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
	"github.com/dmitrymomot/sanitize/pkg/sanitizes"
)

func TestMethodName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sanitize_title", sanitizes.MethodName("title"))
	assert.Equal(t, "sanitize_title_body", sanitizes.MethodName("title", "body"))
	assert.Equal(t, "sanitize_a_b", sanitizes.MethodName("a", "b"))
	assert.Equal(t, "sanitize_b_a", sanitizes.MethodName("b", "a"))
	assert.NotEqual(t, sanitizes.MethodName("a", "b"), sanitizes.MethodName("b", "a"))
}

func TestHookName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "before_save", sanitizes.HookName(""))
	assert.Equal(t, "before_save", sanitizes.HookName(lifecycle.Save))
	assert.Equal(t, "before_create", sanitizes.HookName(lifecycle.Create))
	assert.Equal(t, "before_update", sanitizes.HookName(lifecycle.Update))
}

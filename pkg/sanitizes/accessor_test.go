package sanitizes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sanitize/pkg/sanitizes"
)

type audit struct {
	Note string
}

type comment struct {
	*audit
	Author string
	Text   html
	hidden string
}

func TestAccessor(t *testing.T) {
	t.Parallel()

	t.Run("reads and writes exported fields", func(t *testing.T) {
		t.Parallel()
		c := &comment{Author: "ann", Text: "hi"}
		acc, err := sanitizes.Accessor(c)
		require.NoError(t, err)

		v, err := acc.SanitizeGet("author")
		require.NoError(t, err)
		assert.Equal(t, "ann", v)

		v, err = acc.SanitizeGet("Text")
		require.NoError(t, err)
		assert.Equal(t, "hi", v, "named string types are read as string")

		require.NoError(t, acc.SanitizeSet("text", "bye"))
		assert.Equal(t, html("bye"), c.Text)

		require.NoError(t, acc.SanitizeSet("author", nil))
		assert.Equal(t, "", c.Author)
	})

	t.Run("unexported fields are unknown", func(t *testing.T) {
		t.Parallel()
		acc, err := sanitizes.Accessor(&comment{})
		require.NoError(t, err)
		_, err = acc.SanitizeGet("hidden")
		assert.ErrorIs(t, err, sanitizes.ErrUnknownField)
	})

	t.Run("promoted field through nil embedded pointer", func(t *testing.T) {
		t.Parallel()
		acc, err := sanitizes.Accessor(&comment{})
		require.NoError(t, err)
		_, err = acc.SanitizeGet("note")
		assert.ErrorIs(t, err, sanitizes.ErrNotAddressable)

		c := &comment{audit: &audit{Note: "n"}}
		acc, err = sanitizes.Accessor(c)
		require.NoError(t, err)
		v, err := acc.SanitizeGet("note")
		require.NoError(t, err)
		assert.Equal(t, "n", v)
	})

	t.Run("unassignable value", func(t *testing.T) {
		t.Parallel()
		acc, err := sanitizes.Accessor(&comment{})
		require.NoError(t, err)
		assert.ErrorIs(t, acc.SanitizeSet("author", 42), sanitizes.ErrUnassignable)
	})

	t.Run("rejects values that cannot be written", func(t *testing.T) {
		t.Parallel()
		var nilComment *comment
		for _, obj := range []any{comment{}, nilComment, "text", nil} {
			_, err := sanitizes.Accessor(obj)
			assert.ErrorIs(t, err, sanitizes.ErrNotAddressable)
		}
	})

	t.Run("sanitizable models are returned as is", func(t *testing.T) {
		t.Parallel()
		s := &settings{values: map[string]string{}}
		acc, err := sanitizes.Accessor(s)
		require.NoError(t, err)
		assert.Same(t, s, acc)
	})
}

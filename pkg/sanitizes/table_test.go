package sanitizes_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
	"github.com/dmitrymomot/sanitize/pkg/sanitizes"
)

const tableYAML = `
sanitizers:
  - model: Article
    fields: [title, body]
  - model: Article
    fields: [slug]
    on: create
  - model: Comment
    fields: [author]
    on: update
`

func TestLoadTable(t *testing.T) {
	t.Parallel()

	table, err := sanitizes.LoadTable(strings.NewReader(tableYAML))
	require.NoError(t, err)
	require.Len(t, table.Entries, 3)
	assert.Equal(t, sanitizes.Entry{Model: "Article", Fields: []string{"title", "body"}}, table.Entries[0])
	assert.Equal(t, "create", table.Entries[1].On)

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		table, err := sanitizes.LoadTable(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, table.Entries)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := sanitizes.LoadTable(strings.NewReader("sanitizers:\n  - model: A\n    field: [x]\n"))
		assert.ErrorIs(t, err, sanitizes.ErrInvalidTable)
	})
}

func TestTable_Apply(t *testing.T) {
	t.Parallel()

	models := map[string]any{
		"Article": article{},
		"Comment": (*comment)(nil),
	}

	t.Run("declares every entry", func(t *testing.T) {
		t.Parallel()
		table, err := sanitizes.LoadTable(strings.NewReader(tableYAML))
		require.NoError(t, err)

		reg := lifecycle.NewRegistry()
		decls, err := table.Apply(reg, models)
		require.NoError(t, err)
		require.Len(t, decls, 3)

		assert.Equal(t, "sanitize_title_body", decls[0].Name())
		assert.Equal(t, "before_save", decls[0].Hook())
		assert.Equal(t, "before_create", decls[1].Hook())
		assert.Equal(t, "before_update", decls[2].Hook())

		a := &article{Title: "<b>T</b>", Slug: "<i>s</i>"}
		require.NoError(t, reg.Run(context.Background(), a, lifecycle.ActionUpdate))
		assert.Equal(t, "T", a.Title)
		assert.Equal(t, "<i>s</i>", a.Slug, "create-only sanitizer skipped on update")
	})

	t.Run("entry on overrides option", func(t *testing.T) {
		t.Parallel()
		table := &sanitizes.Table{Entries: []sanitizes.Entry{
			{Model: "Article", Fields: []string{"title"}},
			{Model: "Article", Fields: []string{"slug"}, On: "update"},
		}}
		decls, err := table.Apply(lifecycle.NewRegistry(), models, sanitizes.On(lifecycle.Create))
		require.NoError(t, err)
		assert.Equal(t, lifecycle.Create, decls[0].Point())
		assert.Equal(t, lifecycle.Update, decls[1].Point())
	})

	t.Run("unknown model", func(t *testing.T) {
		t.Parallel()
		table := &sanitizes.Table{Entries: []sanitizes.Entry{{Model: "Ghost", Fields: []string{"x"}}}}
		_, err := table.Apply(lifecycle.NewRegistry(), models)
		assert.ErrorIs(t, err, sanitizes.ErrUnknownModel)
	})

	t.Run("bad point", func(t *testing.T) {
		t.Parallel()
		table := &sanitizes.Table{Entries: []sanitizes.Entry{{Model: "Article", Fields: []string{"title"}, On: "destroy"}}}
		_, err := table.Apply(lifecycle.NewRegistry(), models)
		assert.ErrorIs(t, err, sanitizes.ErrUnknownPoint)
	})

	t.Run("stops at first failing entry", func(t *testing.T) {
		t.Parallel()
		table := &sanitizes.Table{Entries: []sanitizes.Entry{
			{Model: "Article", Fields: []string{"title"}},
			{Model: "Article", Fields: []string{"missing"}},
			{Model: "Article", Fields: []string{"slug"}},
		}}
		reg := lifecycle.NewRegistry()
		decls, err := table.Apply(reg, models)
		assert.ErrorIs(t, err, sanitizes.ErrUnknownField)
		assert.Len(t, decls, 1)
		assert.Equal(t, []string{"sanitize_title"}, reg.Hooks(lifecycle.TypeFor[article](), lifecycle.Save))
	})
}

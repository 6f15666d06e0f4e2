package gormhook_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dmitrymomot/sanitize/pkg/gormhook"
	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
	"github.com/dmitrymomot/sanitize/pkg/sanitizer"
	"github.com/dmitrymomot/sanitize/pkg/sanitizes"
)

type Post struct {
	ID    string `gorm:"primaryKey"`
	Title string
	Body  *string
	Slug  string
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func strPtr(s string) *string { return &s }

func openDB(t *testing.T, hooks *lifecycle.Registry) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Use(gormhook.New(hooks)))
	require.NoError(t, db.AutoMigrate(&Post{}))
	return db
}

func reload(t *testing.T, db *gorm.DB, id string) Post {
	t.Helper()
	var got Post
	require.NoError(t, db.First(&got, "id = ?", id).Error)
	return got
}

func TestPlugin_Create(t *testing.T) {
	t.Parallel()

	hooks := lifecycle.NewRegistry()
	sanitizes.MustDeclare[Post](hooks, []string{"title", "body"})
	db := openDB(t, hooks)

	t.Run("cleans markup and keeps nil body", func(t *testing.T) {
		p := &Post{Title: "<script>x</script>Hello"}
		require.NoError(t, db.Create(p).Error)
		assert.Equal(t, "Hello", p.Title)

		got := reload(t, db, p.ID)
		assert.Equal(t, "Hello", got.Title)
		assert.Nil(t, got.Body)
	})

	t.Run("blank title stays blank", func(t *testing.T) {
		p := &Post{Title: ""}
		require.NoError(t, db.Create(p).Error)
		assert.Equal(t, "", reload(t, db, p.ID).Title)
	})

	t.Run("pointer field is cleaned", func(t *testing.T) {
		p := &Post{Title: "t", Body: strPtr("<p>body</p>")}
		require.NoError(t, db.Create(p).Error)
		got := reload(t, db, p.ID)
		require.NotNil(t, got.Body)
		assert.Equal(t, "body", *got.Body)
	})

	t.Run("batch create cleans every record", func(t *testing.T) {
		posts := []*Post{{Title: "<b>one</b>"}, {Title: "<i>two</i>"}}
		require.NoError(t, db.Create(&posts).Error)
		assert.Equal(t, "one", reload(t, db, posts[0].ID).Title)
		assert.Equal(t, "two", reload(t, db, posts[1].ID).Title)
	})

	t.Run("skip hooks session bypasses sanitizers", func(t *testing.T) {
		p := &Post{Title: "<b>raw</b>"}
		require.NoError(t, db.Session(&gorm.Session{SkipHooks: true}).Create(p).Error)
		assert.Equal(t, "<b>raw</b>", reload(t, db, p.ID).Title)
	})
}

func TestPlugin_CreateOnlySanitizer(t *testing.T) {
	t.Parallel()

	hooks := lifecycle.NewRegistry()
	sanitizes.MustDeclare[Post](hooks, []string{"title"})
	sanitizes.MustDeclare[Post](hooks, []string{"slug"}, sanitizes.On(lifecycle.Create))
	db := openDB(t, hooks)

	p := &Post{Title: "<b>a</b>", Slug: "<i>first</i>"}
	require.NoError(t, db.Create(p).Error)
	got := reload(t, db, p.ID)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, "first", got.Slug)

	got.Title = "<b>b</b>"
	got.Slug = "<i>second</i>"
	require.NoError(t, db.Save(&got).Error)

	updated := reload(t, db, p.ID)
	assert.Equal(t, "b", updated.Title, "save sanitizer runs on update")
	assert.Equal(t, "<i>second</i>", updated.Slug, "create sanitizer does not run on update")
}

func TestPlugin_FailureAbortsWrite(t *testing.T) {
	t.Parallel()

	boom := errors.New("engine down")
	hooks := lifecycle.NewRegistry()
	sanitizes.MustDeclare[Post](hooks, []string{"title"}, sanitizes.WithCleaner(
		sanitizer.CleanerFunc(func(any) (any, error) { return nil, boom }),
	))
	db := openDB(t, hooks)

	p := &Post{Title: "x"}
	err := db.Create(p).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, lifecycle.IsHookError(err))

	var count int64
	require.NoError(t, db.Model(&Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlugin_Initialize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sanitize:lifecycle", gormhook.New(lifecycle.NewRegistry()).Name())

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	assert.ErrorIs(t, db.Use(gormhook.New(nil)), gormhook.ErrNilRegistry)
}

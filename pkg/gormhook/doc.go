// Package gormhook runs lifecycle hooks, and with them every declared field
// sanitizer, inside GORM's create and update callback chains.
//
//	hooks := lifecycle.NewRegistry()
//	sanitizes.MustDeclare[Post](hooks, []string{"title", "body"})
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	if err := db.Use(gormhook.New(hooks)); err != nil {
//	    return err
//	}
//
// Registered hooks run after the model's own BeforeSave/BeforeCreate/
// BeforeUpdate methods and immediately before GORM builds the statement, so
// values they write are what gets persisted. A failing hook adds its error to
// the statement and the write is skipped.
//
// Only the record GORM is writing from is cleaned: Create (single or batch)
// and Save. Updates called with a map or a separate struct, and UpdateColumn,
// write values that never pass through the model and are not sanitized.
// Sessions with SkipHooks set bypass the registry as well.
package gormhook

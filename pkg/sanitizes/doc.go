// Package sanitizes declares which model fields are cleaned right before they
// are persisted.
//
// A declaration names an ordered field set and, optionally, a lifecycle
// point. It produces a sanitizer named after the fields and registers it on a
// lifecycle.Registry, which the persistence adapters (pkg/gormhook, pkg/pg)
// run before writing a record:
//
//	var hooks = lifecycle.NewRegistry()
//
//	type Post struct {
//	    ID    uuid.UUID
//	    Title string
//	    Body  *string
//	    Slug  string
//	}
//
//	var (
//	    _ = sanitizes.MustDeclare[Post](hooks, []string{"title", "body"})                            // before_save, sanitize_title_body
//	    _ = sanitizes.MustDeclare[Post](hooks, []string{"slug"}, sanitizes.On(lifecycle.Create))     // before_create, sanitize_slug
//	)
//
// # Naming
//
// The hook is "before_" followed by the lifecycle point (save when omitted).
// The sanitizer is "sanitize_" followed by the field names joined with "_"
// in declaration order, so {a, b} and {b, a} are two different sanitizers.
//
// # Behaviour
//
// When it runs, the sanitizer visits the fields in order. Blank values (see
// IsBlank) are skipped; every other value is replaced by the result of the
// configured sanitizer.Cleaner, sanitizer.Default() unless WithCleaner is
// given. The walk is not atomic: if the cleaner fails on the second field the
// first one has already been rewritten on the in-memory object, and the error
// aborts the persistence action.
//
// Fields are reached through Sanitizable when the model implements it and
// through reflection otherwise (see Accessor).
//
// # Validation
//
// Declare fails fast: an empty field list, an unknown lifecycle point, a field
// the model does not have, or a second declaration of the same field set for
// the same model all return an error at declaration time. Pass
// AllowRedeclare to opt into stacking duplicate declarations; each one then
// runs, in declaration order.
//
// # Configuration tables
//
// Declarations can also live in YAML and be applied with LoadTable and
// Table.Apply, mapping model names to prototypes.
package sanitizes

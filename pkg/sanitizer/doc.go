// Package sanitizer is the cleaning engine behind declared field sanitizers.
//
// Engine removes unsafe markup with a github.com/microcosm-cc/bluemonday
// policy and then runs an optional pipeline of string transforms built with
// Apply and Compose. Two named policies are provided:
//
//   - PolicyStrict removes every tag; the content of script and style
//     elements is dropped entirely ("<script>x</script>Hello" becomes "Hello").
//   - PolicyUGC keeps the formatting markup usually allowed in user comments
//     and strips scripts, event handlers and unsafe URLs.
//
// # Usage
//
//	engine := sanitizer.MustNew(sanitizer.PolicyStrict,
//	    sanitizer.WithTransforms(sanitizer.RemoveNullBytes, sanitizer.Trim),
//	)
//	safe := engine.CleanString(userInput)
//
// Engines can also be described by environment variables:
//
//	var cfg sanitizer.Config
//	config.MustLoad(&cfg)
//	engine, err := sanitizer.NewFromConfig(cfg)
//
// # Cleaner
//
// Engine implements Cleaner, the value level contract used by pkg/sanitizes.
// Clean accepts string, *string, []byte, []string and the nullable strings
// sql.NullString, sql.Null[string] and pgtype.Text, and returns a value of
// the same type; other types fail with ErrUnsupportedValue. Cleaning already
// clean input returns it unchanged, so a sanitizer that runs twice on retry
// does not alter stored data further.
//
// Engines hold no mutable state and are safe for concurrent use.
package sanitizer

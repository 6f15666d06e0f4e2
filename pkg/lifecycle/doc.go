// Package lifecycle implements the persistence hook table that model
// sanitizers (and any other before-persist behaviour) attach to.
//
// A hook is a named function registered against a model type and a
// lifecycle point. The points mirror the classic ORM callback chain:
//
//   - before_save   runs before every create and every update
//   - before_create runs before the first insert of a record
//   - before_update runs before updates of an existing record
//
// Persistence adapters (see pkg/gormhook and pkg/pg) call Registry.Run with
// the action they are about to perform and the registry dispatches the
// matching hooks in registration order: before_save hooks first, then the
// action specific ones.
//
// # Usage
//
//	reg := lifecycle.NewRegistry()
//	err := reg.Register(lifecycle.TypeFor[Post](), "before_save", "touch", func(ctx context.Context, obj any) error {
//	    obj.(*Post).UpdatedAt = time.Now()
//	    return nil
//	})
//
//	// later, inside the persistence layer
//	if err := reg.Run(ctx, post, lifecycle.ActionCreate); err != nil {
//	    return err // write aborted
//	}
//
// # Error handling
//
// Register rejects hook names the registry does not know with ErrUnknownHook.
// Run stops at the first failing hook and returns a *HookError that wraps the
// original error, so errors.Is works against whatever the hook returned.
// Hooks that already ran are not undone.
//
// # Concurrency
//
// Registry is safe for concurrent use. Registration is expected to happen
// during program start; Run only takes a read lock.
package lifecycle

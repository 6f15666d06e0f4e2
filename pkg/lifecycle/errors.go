package lifecycle

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownHook   = errors.New("lifecycle: unknown hook")
	ErrUnknownPoint  = errors.New("lifecycle: unknown lifecycle point")
	ErrUnknownAction = errors.New("lifecycle: unknown persistence action")
	ErrNilHook       = errors.New("lifecycle: hook function is nil")
	ErrInvalidType   = errors.New("lifecycle: invalid model type")
	ErrEmptyName     = errors.New("lifecycle: hook name is empty")
	ErrDuplicateHook = errors.New("lifecycle: hook name already registered")
)

// HookError reports which registered hook aborted a persistence action.
type HookError struct {
	Hook string // lifecycle hook, e.g. before_save
	Name string // registered handler name
	Err  error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("lifecycle: %s hook %q failed: %v", e.Hook, e.Name, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// IsHookError reports whether err was produced by a failing hook.
func IsHookError(err error) bool {
	var e *HookError
	return errors.As(err, &e)
}

package sanitizes

import (
	"errors"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
)

var (
	ErrNilRegistry          = errors.New("sanitizes: registry is nil")
	ErrNoFields             = errors.New("sanitizes: at least one field is required")
	ErrInvalidField         = errors.New("sanitizes: field name is empty")
	ErrUnknownField         = errors.New("sanitizes: unknown field")
	ErrInvalidModel         = errors.New("sanitizes: model must be a struct or implement Sanitizable")
	ErrDuplicateDeclaration = errors.New("sanitizes: field set already declared for model")
	ErrNotAddressable       = errors.New("sanitizes: model value is not a non-nil pointer to a struct")
	ErrUnassignable         = errors.New("sanitizes: cleaned value cannot be assigned to field")
	ErrUnknownModel         = errors.New("sanitizes: unknown model in table")
	ErrInvalidTable         = errors.New("sanitizes: invalid sanitizer table")

	// ErrUnknownPoint is lifecycle.ErrUnknownPoint, re-exported for callers
	// that only import this package.
	ErrUnknownPoint = lifecycle.ErrUnknownPoint
)

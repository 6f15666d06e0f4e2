package sanitizer

import "errors"

var (
	ErrUnsupportedValue = errors.New("sanitizer: unsupported value type")
	ErrUnknownPolicy    = errors.New("sanitizer: unknown policy")
)

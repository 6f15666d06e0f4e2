package gormhook

import "errors"

var ErrNilRegistry = errors.New("gormhook: lifecycle registry is nil")

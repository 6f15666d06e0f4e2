package lifecycle

import (
	"fmt"
	"strings"
)

// Point identifies where in the persistence flow a hook runs.
type Point string

const (
	Save   Point = "save"
	Create Point = "create"
	Update Point = "update"
)

const hookPrefix = "before_"

// Valid reports whether p is one of the supported lifecycle points.
func (p Point) Valid() bool {
	switch p {
	case Save, Create, Update:
		return true
	}
	return false
}

// Hook returns the hook name for the point, e.g. "before_save".
func (p Point) Hook() string {
	return hookPrefix + string(p)
}

func (p Point) String() string {
	return string(p)
}

// ParsePoint converts a textual lifecycle point into a Point.
// An empty string yields Save.
func ParsePoint(s string) (Point, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Save, nil
	}
	p := Point(strings.TrimPrefix(s, hookPrefix))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPoint, s)
	}
	return p, nil
}

// PointFromHook resolves a hook name such as "before_create" to its Point.
func PointFromHook(hook string) (Point, bool) {
	name, ok := strings.CutPrefix(hook, hookPrefix)
	if !ok {
		return "", false
	}
	p := Point(name)
	return p, p.Valid()
}

// Action is the persistence operation an adapter is about to perform.
type Action int

const (
	ActionCreate Action = iota + 1
	ActionUpdate
)

// Points returns the lifecycle points dispatched for the action, in order.
func (a Action) Points() []Point {
	switch a {
	case ActionCreate:
		return []Point{Save, Create}
	case ActionUpdate:
		return []Point{Save, Update}
	}
	return nil
}

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

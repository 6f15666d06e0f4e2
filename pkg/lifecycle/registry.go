package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/dmitrymomot/sanitize/pkg/logger"
)

// HookFunc runs before a persistence action. obj is the record being persisted,
// normally a pointer to the model struct.
type HookFunc func(ctx context.Context, obj any) error

type hook struct {
	name string
	fn   HookFunc
}

// Registry maps model types to the hooks registered for each lifecycle point.
type Registry struct {
	mu    sync.RWMutex
	hooks map[reflect.Type]map[Point][]hook
	log   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates an empty hook registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		hooks: make(map[reflect.Type]map[Point][]hook),
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register attaches fn under name to the given hook of typ.
// The hook must be a known "before_<point>" name, otherwise ErrUnknownHook is
// returned. Registering the same name twice is additive: the function runs
// once per registration.
func (r *Registry) Register(typ reflect.Type, hookName, name string, fn HookFunc) error {
	return r.register(typ, hookName, name, fn, false)
}

// RegisterUnique is like Register but fails with ErrDuplicateHook when name is
// already registered for typ at any point. The check and the insert happen
// under one lock.
func (r *Registry) RegisterUnique(typ reflect.Type, hookName, name string, fn HookFunc) error {
	return r.register(typ, hookName, name, fn, true)
}

func (r *Registry) register(typ reflect.Type, hookName, name string, fn HookFunc, unique bool) error {
	typ = indirect(typ)
	if typ == nil {
		return ErrInvalidType
	}
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilHook
	}
	point, ok := PointFromHook(hookName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHook, hookName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if unique && r.has(typ, name) {
		return fmt.Errorf("%w: %s %q", ErrDuplicateHook, typ, name)
	}

	points, ok := r.hooks[typ]
	if !ok {
		points = make(map[Point][]hook)
		r.hooks[typ] = points
	}
	points[point] = append(points[point], hook{name: name, fn: fn})

	r.log.Debug("lifecycle hook registered",
		logger.Model(typ.String()),
		logger.Hook(hookName),
		logger.Callback(name),
	)
	return nil
}

// Has reports whether a hook named name is registered for typ at any point.
func (r *Registry) Has(typ reflect.Type, name string) bool {
	typ = indirect(typ)

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.has(typ, name)
}

// has expects r.mu to be held.
func (r *Registry) has(typ reflect.Type, name string) bool {
	for _, hooks := range r.hooks[typ] {
		for _, h := range hooks {
			if h.name == name {
				return true
			}
		}
	}
	return false
}

// Hooks returns the names registered for typ at point, in dispatch order.
func (r *Registry) Hooks(typ reflect.Type, point Point) []string {
	typ = indirect(typ)

	r.mu.RLock()
	defer r.mu.RUnlock()

	hooks := r.hooks[typ][point]
	names := make([]string, 0, len(hooks))
	for _, h := range hooks {
		names = append(names, h.name)
	}
	return names
}

// Run dispatches the hooks registered for obj's type that apply to action.
// It stops at the first failing hook. Types without hooks are a no-op.
func (r *Registry) Run(ctx context.Context, obj any, action Action) error {
	points := action.Points()
	if points == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	typ := TypeOf(obj)
	if typ == nil {
		return nil
	}

	r.mu.RLock()
	byPoint := r.hooks[typ]
	var chain []hook
	var names []string
	for _, p := range points {
		for _, h := range byPoint[p] {
			chain = append(chain, h)
			names = append(names, p.Hook())
		}
	}
	r.mu.RUnlock()

	for i, h := range chain {
		if err := h.fn(ctx, obj); err != nil {
			r.log.DebugContext(ctx, "lifecycle hook failed",
				logger.Model(typ.String()),
				logger.Hook(names[i]),
				logger.Callback(h.name),
				logger.Error(err),
			)
			return &HookError{Hook: names[i], Name: h.name, Err: err}
		}
	}
	return nil
}

// TypeOf returns the model type of v with pointers removed.
func TypeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return indirect(reflect.TypeOf(v))
}

// TypeFor returns the model type of T with pointers removed.
func TypeFor[T any]() reflect.Type {
	return indirect(reflect.TypeFor[T]())
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

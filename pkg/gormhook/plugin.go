package gormhook

import (
	"log/slog"
	"reflect"

	"gorm.io/gorm"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
	"github.com/dmitrymomot/sanitize/pkg/logger"
)

const (
	pluginName = "sanitize:lifecycle"

	createCallback = "sanitize:before_create"
	updateCallback = "sanitize:before_update"
)

// Plugin is a gorm.Plugin dispatching a lifecycle.Registry.
type Plugin struct {
	hooks *lifecycle.Registry
	log   *slog.Logger
}

// Option configures the plugin.
type Option func(*Plugin)

// WithLogger sets the logger used to report aborted writes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a plugin for hooks. Register it with db.Use.
func New(hooks *lifecycle.Registry, opts ...Option) *Plugin {
	p := &Plugin{hooks: hooks, log: logger.Discard()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Plugin) Name() string {
	return pluginName
}

// Initialize registers the create and update callbacks.
func (p *Plugin) Initialize(db *gorm.DB) error {
	if p.hooks == nil {
		return ErrNilRegistry
	}
	err := db.Callback().Create().
		After("gorm:before_create").
		Before("gorm:create").
		Register(createCallback, p.callback(lifecycle.ActionCreate))
	if err != nil {
		return err
	}
	return db.Callback().Update().
		After("gorm:before_update").
		Before("gorm:update").
		Register(updateCallback, p.callback(lifecycle.ActionUpdate))
}

func (p *Plugin) callback(action lifecycle.Action) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil || db.Statement.Schema == nil || db.Statement.SkipHooks {
			return
		}
		ctx := db.Statement.Context
		err := eachModel(db.Statement.ReflectValue, func(obj any) error {
			return p.hooks.Run(ctx, obj, action)
		})
		if err != nil {
			p.log.WarnContext(ctx, "persistence aborted by lifecycle hook",
				logger.Component("gormhook"),
				logger.Model(db.Statement.Schema.Name),
				slog.String("action", action.String()),
				logger.Error(err),
			)
			_ = db.AddError(err)
		}
	}
}

// eachModel calls fn with a pointer to every struct held in rv, which may be
// a struct, a pointer, or a slice or array of either.
func eachModel(rv reflect.Value, fn func(any) error) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return eachModel(rv.Elem(), fn)
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if err := eachModel(rv.Index(i), fn); err != nil {
				return err
			}
		}
	case reflect.Struct:
		if rv.CanAddr() {
			return fn(rv.Addr().Interface())
		}
	}
	return nil
}

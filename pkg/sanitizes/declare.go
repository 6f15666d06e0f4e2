package sanitizes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
	"github.com/dmitrymomot/sanitize/pkg/logger"
	"github.com/dmitrymomot/sanitize/pkg/sanitizer"
)

// Option configures a declaration.
type Option func(*options)

type options struct {
	point     lifecycle.Point
	cleaner   sanitizer.Cleaner
	log       *slog.Logger
	redeclare bool
}

// On selects the lifecycle point the sanitizer runs at. Defaults to lifecycle.Save.
func On(point lifecycle.Point) Option {
	return func(o *options) { o.point = point }
}

// WithCleaner replaces the default strict engine. Nil is ignored.
func WithCleaner(c sanitizer.Cleaner) Option {
	return func(o *options) {
		if c != nil {
			o.cleaner = c
		}
	}
}

// WithLogger sets the logger used for declaration diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// AllowRedeclare permits declaring the same field set twice for a model.
// Each declaration registers its own hook, so the sanitizer then runs once per
// declaration, in declaration order.
func AllowRedeclare() Option {
	return func(o *options) { o.redeclare = true }
}

// Declaration is a registered sanitizer for one model and field set.
// The sanitizer itself is not exported; it only runs through the lifecycle
// registry it was declared on.
type Declaration struct {
	model   reflect.Type
	fields  []string
	point   lifecycle.Point
	name    string
	cleaner sanitizer.Cleaner
}

// Declare registers a sanitizer for the listed fields of model T on reg.
//
// The sanitizer is named MethodName(fields...) and attached to the hook
// HookName(point). When it runs it walks fields in order and replaces every
// non-blank value with its cleaned form. Fields already written stay written
// if a later field fails.
//
//	var _ = sanitizes.MustDeclare[Post](registry, []string{"title", "body"})
//	var _ = sanitizes.MustDeclare[Post](registry, []string{"slug"}, sanitizes.On(lifecycle.Create))
func Declare[T any](reg *lifecycle.Registry, fields []string, opts ...Option) (*Declaration, error) {
	return declare(reg, lifecycle.TypeFor[T](), fields, opts...)
}

// MustDeclare is like Declare but panics on error. Use it in package level
// var blocks or init functions.
func MustDeclare[T any](reg *lifecycle.Registry, fields []string, opts ...Option) *Declaration {
	d, err := Declare[T](reg, fields, opts...)
	if err != nil {
		panic(fmt.Sprintf("sanitizes: %v", err))
	}
	return d
}

func declare(reg *lifecycle.Registry, model reflect.Type, fields []string, opts ...Option) (*Declaration, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	o := &options{point: lifecycle.Save, log: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	if o.cleaner == nil {
		o.cleaner = sanitizer.Default()
	}

	if !o.point.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPoint, o.point)
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if model == nil {
		return nil, ErrInvalidModel
	}

	sanitizable := implementsSanitizable(model)
	if !sanitizable && model.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModel, model)
	}
	for _, f := range fields {
		if f == "" {
			return nil, ErrInvalidField
		}
		// Sanitizable models resolve names themselves; check them when the
		// sanitizer runs.
		if !sanitizable && !hasField(model, f) {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, model, f)
		}
	}

	d := &Declaration{
		model:   model,
		fields:  slices.Clone(fields),
		point:   o.point,
		name:    MethodName(fields...),
		cleaner: o.cleaner,
	}

	register := reg.RegisterUnique
	if o.redeclare {
		register = reg.Register
	}
	if err := register(model, d.Hook(), d.name, d.sanitize); err != nil {
		if errors.Is(err, lifecycle.ErrDuplicateHook) {
			return nil, errors.Join(ErrDuplicateDeclaration, err)
		}
		return nil, err
	}

	o.log.Debug("sanitizer declared",
		logger.Model(model.String()),
		logger.Hook(d.Hook()),
		logger.Callback(d.name),
		logger.Fields(d.fields...),
	)
	return d, nil
}

// sanitize is the generated per-field-set method.
func (d *Declaration) sanitize(_ context.Context, obj any) error {
	acc, err := Accessor(obj)
	if err != nil {
		return err
	}
	for _, field := range d.fields {
		value, err := acc.SanitizeGet(field)
		if err != nil {
			return fmt.Errorf("sanitizes: read %s: %w", field, err)
		}
		if IsBlank(value) {
			continue
		}
		cleaned, err := d.cleaner.Clean(value)
		if err != nil {
			return fmt.Errorf("sanitizes: clean %s: %w", field, err)
		}
		if err := acc.SanitizeSet(field, cleaned); err != nil {
			return fmt.Errorf("sanitizes: write %s: %w", field, err)
		}
	}
	return nil
}

// Name returns the generated sanitizer name, e.g. sanitize_title_body.
func (d *Declaration) Name() string { return d.name }

// Hook returns the lifecycle hook the sanitizer is attached to.
func (d *Declaration) Hook() string { return HookName(d.point) }

// Point returns the lifecycle point the sanitizer runs at.
func (d *Declaration) Point() lifecycle.Point { return d.point }

// Fields returns a copy of the declared field names in order.
func (d *Declaration) Fields() []string { return slices.Clone(d.fields) }

// Model returns the model type the sanitizer was declared for.
func (d *Declaration) Model() reflect.Type { return d.model }

func (d *Declaration) String() string {
	return fmt.Sprintf("%s#%s(%s)", d.model, d.name, d.Hook())
}

package sanitizes

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/iancoleman/strcase"
)

// Sanitizable is implemented by models that expose their fields by name
// instead of relying on reflection. Unknown names should return an error
// wrapping ErrUnknownField.
type Sanitizable interface {
	SanitizeGet(field string) (any, error)
	SanitizeSet(field string, value any) error
}

var sanitizableType = reflect.TypeFor[Sanitizable]()

func implementsSanitizable(typ reflect.Type) bool {
	return typ.Implements(sanitizableType) || reflect.PointerTo(typ).Implements(sanitizableType)
}

// Accessor returns a Sanitizable view of obj. Models implementing Sanitizable
// are returned as is; any other value must be a non-nil pointer to a struct,
// whose exported fields are resolved by name:
//
//   - the `sanitize:"name"` tag when present
//   - otherwise the snake_case form of the Go field name (BodyHTML is body_html)
//   - or the Go field name itself
func Accessor(obj any) (Sanitizable, error) {
	if s, ok := obj.(Sanitizable); ok {
		return s, nil
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotAddressable, obj)
	}
	elem := rv.Elem()
	return &structAccessor{value: elem, fields: fieldsOf(elem.Type())}, nil
}

type structAccessor struct {
	value  reflect.Value
	fields map[string][]int
}

func (a *structAccessor) field(name string) (reflect.Value, error) {
	idx, ok := a.fields[name]
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, a.value.Type(), name)
	}
	fv, err := a.value.FieldByIndexErr(idx)
	if err != nil {
		// nil embedded pointer on the path
		return reflect.Value{}, fmt.Errorf("%w: %s.%s: %v", ErrNotAddressable, a.value.Type(), name, err)
	}
	return fv, nil
}

func (a *structAccessor) SanitizeGet(name string) (any, error) {
	fv, err := a.field(name)
	if err != nil {
		return nil, err
	}
	// Named string types are handed out as plain strings so cleaners that
	// switch on string handle them.
	if fv.Kind() == reflect.String {
		return fv.String(), nil
	}
	return fv.Interface(), nil
}

func (a *structAccessor) SanitizeSet(name string, value any) error {
	fv, err := a.field(name)
	if err != nil {
		return err
	}
	if value == nil {
		fv.SetZero()
		return nil
	}
	nv := reflect.ValueOf(value)
	switch {
	case nv.Type().AssignableTo(fv.Type()):
		fv.Set(nv)
	case nv.Kind() == fv.Kind() && nv.Type().ConvertibleTo(fv.Type()):
		fv.Set(nv.Convert(fv.Type()))
	default:
		return fmt.Errorf("%w: %s.%s is %s, got %T", ErrUnassignable, a.value.Type(), name, fv.Type(), value)
	}
	return nil
}

var fieldCache sync.Map // reflect.Type -> map[string][]int

func fieldsOf(typ reflect.Type) map[string][]int {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.(map[string][]int)
	}

	fields := make(map[string][]int)
	for _, f := range reflect.VisibleFields(typ) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := f.Tag.Get("sanitize")
		if tag == "-" {
			continue
		}
		if tag != "" {
			fields[tag] = f.Index
			continue
		}
		if snake := strcase.ToSnake(f.Name); !hasKey(fields, snake) {
			fields[snake] = f.Index
		}
		if !hasKey(fields, f.Name) {
			fields[f.Name] = f.Index
		}
	}

	actual, _ := fieldCache.LoadOrStore(typ, fields)
	return actual.(map[string][]int)
}

func hasKey(m map[string][]int, k string) bool {
	_, ok := m[k]
	return ok
}

func hasField(typ reflect.Type, name string) bool {
	_, ok := fieldsOf(typ)[name]
	return ok
}

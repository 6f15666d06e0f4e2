package sanitizes

import (
	"bytes"
	"database/sql/driver"
	"reflect"
	"strings"
)

// IsBlank reports whether v counts as absent, in which case a sanitizer leaves
// the field untouched. Blank values are:
//
//   - nil, and nil pointers, interfaces, maps, slices, channels and funcs
//   - strings and byte slices that are empty or contain only whitespace
//   - empty slices, maps and arrays
//   - false
//   - driver.Valuer values whose Value is nil or blank (sql.NullString,
//     pgtype.Text and friends with Valid unset)
//
// Pointers are followed, so a *string pointing at "  " is blank. Numbers,
// including zero, are never blank.
func IsBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []byte:
		return len(bytes.TrimSpace(val)) == 0
	case bool:
		return !val
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return true
	}
	if valuer, ok := v.(driver.Valuer); ok {
		if dv, err := valuer.Value(); err == nil {
			return IsBlank(dv)
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return IsBlank(rv.Elem().Interface())
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

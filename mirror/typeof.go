package mirror

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Canonical type tags.
const (
	TagObject    = "object"
	TagArray     = "array"
	TagFunction  = "function"
	TagString    = "string"
	TagNumber    = "number"
	TagBoolean   = "boolean"
	TagDate      = "date"
	TagRegExp    = "regexp"
	TagError     = "error"
	TagNull      = "null"
	TagUndefined = "undefined"
)

// TypeOf returns the canonical lowercase type tag of v. It is total: every
// value, including nil, has a tag. Host values report their own tag
// through Tagger; Go values are classified by kind.
func TypeOf(v any) string {
	if isNil(v) {
		return TagNull
	}

	switch x := v.(type) {
	case Tagger:
		return strings.ToLower(x.TypeTag())
	case Callable:
		return TagFunction
	case Composite:
		return TagObject
	case time.Time, *time.Time:
		return TagDate
	case *regexp.Regexp, *regexp2.Regexp:
		return TagRegExp
	case error:
		return TagError
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return TagString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return TagNumber
	case reflect.Bool:
		return TagBoolean
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Func:
		return TagFunction
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return TagObject
		}
	case reflect.Struct:
		return TagObject
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return TagObject
		}
		return TypeOf(rv.Elem().Interface())
	}
	return strings.ToLower(rv.Kind().String())
}

// IsMethod reports whether v counts as a method attribute.
func IsMethod(v any) bool {
	return TypeOf(v) == TagFunction
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

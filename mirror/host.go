package mirror

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"
)

// Composite is the host contract for object-like values.
type Composite interface {
	// Keys returns the enumerable attribute names reachable from the
	// value: own names first in their natural order, then each delegate's
	// in chain order. A name shadowed at a nearer level appears once.
	Keys() []string

	// HasOwn reports whether name is stored directly on the value,
	// enumerable or not.
	HasOwn(name string) bool

	// Lookup resolves name on the value, then along its delegation
	// chain, and returns the first match.
	Lookup(name string) (any, bool)
}

// Callable is the host contract for function-like values.
type Callable interface {
	// Name returns the declared identifier, "" when anonymous.
	Name() string

	// Source renders the callable back to source text.
	Source() string
}

// Tagger is implemented by host values that describe their own type.
// TypeOf lowercases the reported tag.
type Tagger interface {
	TypeTag() string
}

// ConstructorKey is the attribute that resolves to a composite's
// constructing function.
const ConstructorKey = "constructor"

// asComposite returns the Composite view of v, adapting string-keyed Go
// maps and structs.
func asComposite(v any) (Composite, bool) {
	if c, ok := v.(Composite); ok {
		return c, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String && !rv.IsNil() {
			return newMapComposite(rv), true
		}
	case reflect.Struct:
		return newStructComposite(rv), true
	case reflect.Pointer:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			return newStructComposite(rv), true
		}
	}
	return nil, false
}

// asCallable returns the Callable view of v, adapting Go funcs.
func asCallable(v any) (Callable, bool) {
	if c, ok := v.(Callable); ok {
		return c, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		return nativeFunc{name: goFuncName(rv)}, true
	}
	return nil, false
}

// ---------------------------------------------------------------------------
// Native functions
// ---------------------------------------------------------------------------

// nativeFunc stands in for callables that have no source text, the way
// JavaScript engines render built-ins.
type nativeFunc struct {
	name string
}

func (f nativeFunc) Name() string { return f.name }

func (f nativeFunc) Source() string {
	return fmt.Sprintf("function %s() { [native code] }", f.name)
}

// goFuncName returns the bare name of a Go function. Closures have no
// stable name and report "".
func goFuncName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	// Method values made through reflect share one trampoline.
	if strings.HasPrefix(name, "reflect.") {
		return ""
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if isClosureName(name) {
		return ""
	}
	return name
}

func isClosureName(name string) bool {
	if !strings.HasPrefix(name, "func") || len(name) == len("func") {
		return false
	}
	for _, r := range name[len("func"):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Go maps
// ---------------------------------------------------------------------------

// mapComposite views a string-keyed map as an object with sorted own keys
// and no delegation chain. Its constructor is the built-in Object.
type mapComposite struct {
	rv reflect.Value
}

func newMapComposite(rv reflect.Value) *mapComposite {
	return &mapComposite{rv: rv}
}

func (m *mapComposite) Keys() []string {
	keys := make([]string, 0, m.rv.Len())
	iter := m.rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)
	return keys
}

func (m *mapComposite) HasOwn(name string) bool {
	return m.index(name).IsValid()
}

func (m *mapComposite) Lookup(name string) (any, bool) {
	if v := m.index(name); v.IsValid() {
		return v.Interface(), true
	}
	if name == ConstructorKey {
		return nativeFunc{name: "Object"}, true
	}
	return nil, false
}

func (m *mapComposite) index(name string) reflect.Value {
	key := reflect.ValueOf(name).Convert(m.rv.Type().Key())
	return m.rv.MapIndex(key)
}

// ---------------------------------------------------------------------------
// Go structs
// ---------------------------------------------------------------------------

// structComposite views a struct, or pointer to struct, as an object whose
// own attributes are its exported fields followed by its exported
// methods. Its constructor is named after the struct type.
type structComposite struct {
	rv     reflect.Value // as given; a pointer carries the full method set
	sv     reflect.Value // the struct itself
	names  []string
	fields map[string]int // field index; methods are absent
}

func newStructComposite(rv reflect.Value) *structComposite {
	sv := rv
	if sv.Kind() == reflect.Pointer {
		sv = sv.Elem()
	}
	s := &structComposite{rv: rv, sv: sv, fields: make(map[string]int)}

	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		s.names = append(s.names, f.Name)
		s.fields[f.Name] = i
	}
	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		s.names = append(s.names, rt.Method(i).Name)
	}
	return s
}

func (s *structComposite) Keys() []string {
	keys := make([]string, len(s.names))
	copy(keys, s.names)
	return keys
}

func (s *structComposite) HasOwn(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

func (s *structComposite) Lookup(name string) (any, bool) {
	if i, ok := s.fields[name]; ok {
		return s.sv.Field(i).Interface(), true
	}
	if m := s.rv.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}
	if name == ConstructorKey {
		return nativeFunc{name: s.sv.Type().Name()}, true
	}
	return nil, false
}

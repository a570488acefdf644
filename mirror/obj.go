package mirror

import "github.com/chazu/jsreflect/params"

// Scope selects which attributes a query considers.
type Scope int

const (
	// ScopeChain considers own attributes and those reachable through the
	// delegation chain. It is the zero value.
	ScopeChain Scope = iota
	// ScopeOwn considers own attributes only.
	ScopeOwn
)

func (s Scope) String() string {
	if s == ScopeOwn {
		return "own"
	}
	return "chain"
}

// Obj introspects a composite value. It never mutates the value.
type Obj struct {
	value Composite
}

// NewObj wraps v, which must classify as an object.
func NewObj(v any) (*Obj, error) {
	if isNil(v) || TypeOf(v) != TagObject {
		return nil, ErrNotAnObject
	}
	c, ok := asComposite(v)
	if !ok {
		return nil, ErrNotAnObject
	}
	return &Obj{value: c}, nil
}

// Value returns the wrapped composite.
func (o *Obj) Value() Composite {
	return o.value
}

// resolve looks name up under scope. Own attributes shadow delegated ones.
func (o *Obj) resolve(name string, scope Scope) (any, bool) {
	if scope == ScopeOwn && !o.value.HasOwn(name) {
		return nil, false
	}
	return o.value.Lookup(name)
}

// HasProperty reports whether name resolves to a non-callable attribute.
func (o *Obj) HasProperty(name string, scope Scope) bool {
	v, ok := o.resolve(name, scope)
	return ok && !IsMethod(v)
}

// HasMethod reports whether name resolves to a callable attribute.
func (o *Obj) HasMethod(name string, scope Scope) bool {
	v, ok := o.resolve(name, scope)
	return ok && IsMethod(v)
}

// Name returns the name of the function that constructed the value, or ""
// when no constructor resolves.
func (o *Obj) Name() string {
	if c, ok := asCallable(o.Constructor()); ok {
		return c.Name()
	}
	return ""
}

// Constructor returns the value's constructing function, nil if none.
func (o *Obj) Constructor() any {
	v, _ := o.value.Lookup(ConstructorKey)
	return v
}

// ConstructorParameters returns the parameter names of the constructing
// function.
func (o *Obj) ConstructorParameters() ([]string, error) {
	return o.MethodParameters(ConstructorKey)
}

// MethodParameters returns the parameter names of the named method,
// which may live anywhere on the delegation chain.
func (o *Obj) MethodParameters(name string) ([]string, error) {
	v, ok := o.resolve(name, ScopeChain)
	if !ok || !IsMethod(v) {
		return nil, ErrMethodNotFound
	}
	c, ok := asCallable(v)
	if !ok {
		return nil, ErrMethodNotFound
	}
	return params.Parse(c.Source()), nil
}

// Methods returns the names of all callable attributes under scope.
func (o *Obj) Methods(scope Scope) []string {
	return o.collect(func(name string) bool { return o.HasMethod(name, scope) })
}

// Method returns the callable resolved at name.
func (o *Obj) Method(name string, scope Scope) (any, error) {
	v, ok := o.resolve(name, scope)
	if !ok || !IsMethod(v) {
		return nil, ErrMethodNotFound
	}
	return v, nil
}

// Properties returns the names of all non-callable attributes under scope.
func (o *Obj) Properties(scope Scope) []string {
	return o.collect(func(name string) bool { return o.HasProperty(name, scope) })
}

// Property returns the non-callable value resolved at name.
func (o *Obj) Property(name string, scope Scope) (any, error) {
	v, ok := o.resolve(name, scope)
	if !ok || IsMethod(v) {
		return nil, ErrPropertyNotFound
	}
	return v, nil
}

// PropertiesAndMethods returns the names of all attributes under scope.
func (o *Obj) PropertiesAndMethods(scope Scope) []string {
	return o.collect(func(name string) bool {
		_, ok := o.resolve(name, scope)
		return ok
	})
}

// collect filters the host's enumeration order, keeping the first
// occurrence of each name.
func (o *Obj) collect(keep func(name string) bool) []string {
	keys := o.value.Keys()
	names := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, name := range keys {
		if seen[name] {
			continue
		}
		seen[name] = true
		if keep(name) {
			names = append(names, name)
		}
	}
	return names
}

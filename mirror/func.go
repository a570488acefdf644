package mirror

import "github.com/chazu/jsreflect/params"

// Func introspects a callable value.
type Func struct {
	fn Callable
}

// NewFunc wraps v, which must classify as a function.
func NewFunc(v any) (*Func, error) {
	if TypeOf(v) != TagFunction {
		return nil, ErrNotACallable
	}
	c, ok := asCallable(v)
	if !ok {
		return nil, ErrNotACallable
	}
	return &Func{fn: c}, nil
}

// Name returns the callable's declared identifier, "" if anonymous.
func (f *Func) Name() string {
	return f.fn.Name()
}

// Source returns the callable rendered as source text.
func (f *Func) Source() string {
	return f.fn.Source()
}

// Parameters returns the declared parameter names in order.
func (f *Func) Parameters() []string {
	return params.Parse(f.fn.Source())
}

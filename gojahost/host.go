// Package gojahost adapts JavaScript values evaluated by goja to the
// mirror host contracts.
//
// A Host owns one goja runtime. Like the runtime it is not safe for
// concurrent use.
package gojahost

import (
	"errors"
	"fmt"
	"os"

	"github.com/dop251/goja"
	"github.com/tliron/commonlog"

	"github.com/chazu/jsreflect/object"
)

var log = commonlog.GetLogger("jsreflect.gojahost")

// ErrUndefinedGlobal is returned by Global for names the global object
// does not hold.
var ErrUndefinedGlobal = errors.New("gojahost: global is not defined")

// Host evaluates JavaScript and wraps the results.
type Host struct {
	rt       *goja.Runtime
	toString goja.Callable // Function.prototype.toString
}

// New creates a host with a fresh runtime.
func New() *Host {
	rt := goja.New()
	h := &Host{rt: rt}
	proto := rt.Get("Function").ToObject(rt).Get("prototype").ToObject(rt)
	h.toString, _ = goja.AssertFunction(proto.Get("toString"))
	return h
}

// Runtime returns the underlying goja runtime.
func (h *Host) Runtime() *goja.Runtime {
	return h.rt
}

// RunString evaluates src as a script. name is used in stack traces.
func (h *Host) RunString(name, src string) error {
	log.Debugf("running script %s (%d bytes)", name, len(src))
	if _, err := h.rt.RunScript(name, src); err != nil {
		return fmt.Errorf("gojahost: run %s: %w", name, err)
	}
	return nil
}

// RunFile reads and evaluates a script file.
func (h *Host) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gojahost: cannot read %s: %w", path, err)
	}
	return h.RunString(path, string(data))
}

// Eval evaluates expr and returns the wrapped result.
func (h *Host) Eval(expr string) (any, error) {
	v, err := h.rt.RunString(expr)
	if err != nil {
		return nil, fmt.Errorf("gojahost: eval %q: %w", expr, err)
	}
	return h.Wrap(v), nil
}

// Global returns the wrapped value of a global object property.
// Top-level let and const bindings are not properties of the global
// object; use Eval for those.
func (h *Host) Global(name string) (any, error) {
	v := h.rt.Get(name)
	if v == nil {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedGlobal, name)
	}
	return h.Wrap(v), nil
}

// Wrap converts a goja value: null becomes nil, undefined becomes
// object.Undefined, objects become *Value and other primitives export to
// their Go equivalents.
func (h *Host) Wrap(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) {
		return object.Undefined
	}
	if goja.IsNull(v) {
		return nil
	}
	switch x := v.(type) {
	case *goja.Object:
		return &Value{host: h, obj: x}
	case *goja.Symbol:
		return Symbol{desc: x.String()}
	}
	return v.Export()
}

// source renders a function the way Function.prototype.toString does,
// regardless of any toString the function itself carries.
func (h *Host) source(obj *goja.Object) string {
	if h.toString == nil {
		return ""
	}
	s, err := h.toString(obj)
	if err != nil {
		log.Debugf("toString failed: %s", err)
		return ""
	}
	return s.String()
}

// try runs f, recovering a JavaScript exception thrown by a getter or a
// proxy trap. It reports whether f completed.
func (h *Host) try(what string, f func()) bool {
	if ex := h.rt.Try(f); ex != nil {
		log.Debugf("%s threw: %s", what, ex)
		return false
	}
	return true
}

// Symbol is a wrapped JavaScript symbol.
type Symbol struct {
	desc string
}

// TypeTag reports the symbol class.
func (s Symbol) TypeTag() string { return "Symbol" }

func (s Symbol) String() string { return s.desc }

package gojahost

import (
	"github.com/dop251/goja"

	"github.com/chazu/jsreflect/object"
)

// Value is a wrapped JavaScript object. It satisfies mirror.Tagger and
// mirror.Composite for every object, and mirror.Callable, which is only
// meaningful when the object is a function.
//
// Reading an attribute can run script code. An attribute whose getter
// throws still resolves, to object.Undefined. Keys and HasOwn stop at a
// proxy trap that throws.
type Value struct {
	host *Host
	obj  *goja.Object
}

// Object returns the underlying goja object.
func (v *Value) Object() *goja.Object {
	return v.obj
}

// TypeTag reports the object's class: Object, Function, Array, Date,
// RegExp, Error and so on.
func (v *Value) TypeTag() string {
	return v.obj.ClassName()
}

func (v *Value) String() string {
	return "[object " + v.obj.ClassName() + "]"
}

// Keys returns the names a for-in loop would visit.
func (v *Value) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	v.host.try("keys", func() {
		for o := v.obj; o != nil; o = o.Prototype() {
			for _, k := range o.Keys() {
				if !seen[k] {
					keys = append(keys, k)
				}
			}
			for _, k := range o.GetOwnPropertyNames() {
				seen[k] = true
			}
		}
	})
	return keys
}

// HasOwn reports own-property membership, including non-enumerable
// properties.
func (v *Value) HasOwn(name string) bool {
	var own bool
	v.host.try("own keys", func() { own = hasOwn(v.obj, name) })
	return own
}

// Lookup resolves name through the prototype chain, reading it from the
// object itself so that getters see the right receiver.
func (v *Value) Lookup(name string) (any, bool) {
	var (
		val   goja.Value
		found bool
	)
	ok := v.host.try("get "+name, func() {
		for o := v.obj; o != nil; o = o.Prototype() {
			if hasOwn(o, name) {
				found = true
				val = v.obj.Get(name)
				return
			}
		}
	})
	if !found {
		return nil, false
	}
	if !ok {
		return object.Undefined, true
	}
	return v.host.Wrap(val), true
}

// Name returns the function's name property, "" when anonymous.
func (v *Value) Name() string {
	var name string
	v.host.try("get name", func() {
		n := v.obj.Get("name")
		if n == nil || goja.IsUndefined(n) || goja.IsNull(n) {
			return
		}
		name = n.String()
	})
	return name
}

// Source returns the function's source text.
func (v *Value) Source() string {
	return v.host.source(v.obj)
}

func hasOwn(o *goja.Object, name string) bool {
	for _, k := range o.GetOwnPropertyNames() {
		if k == name {
			return true
		}
	}
	return false
}

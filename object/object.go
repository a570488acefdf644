// Package object is a native Go host for prototype-based values.
//
// An Object is an explicit pair: an ordered table of own slots and an
// optional prototype it delegates to. Lookups walk the prototype chain
// iteratively and stop at the first object holding the name. A Function
// carries its own source text and a prototype object for the instances
// it constructs.
//
// Objects are not safe for concurrent mutation. Concurrent reads are fine.
package object

import (
	"errors"
	"fmt"
)

// ErrCyclicPrototype is returned when setting a prototype would make an
// object delegate to itself.
var ErrCyclicPrototype = errors.New("object: cyclic prototype chain")

// slot is one own attribute.
type slot struct {
	name       string
	value      any
	enumerable bool
}

// Object is a prototype-based composite value. The zero value is an empty
// object with no prototype.
type Object struct {
	slots []slot
	index map[string]int
	proto *Object
}

// New creates an empty object delegating to proto, which may be nil.
func New(proto *Object) *Object {
	return &Object{proto: proto}
}

// NewPlain creates an empty object delegating to Root, like an object
// literal.
func NewPlain() *Object {
	return New(Root())
}

// TypeTag reports the object's canonical class.
func (o *Object) TypeTag() string {
	return "Object"
}

// ---------------------------------------------------------------------------
// Own slots
// ---------------------------------------------------------------------------

// Set assigns an own attribute. A new attribute is enumerable; an existing
// one keeps its enumerability. Set returns o for chaining.
func (o *Object) Set(name string, value any) *Object {
	if i, ok := o.index[name]; ok {
		o.slots[i].value = value
		return o
	}
	return o.Define(name, value, true)
}

// Define creates or replaces an own attribute with explicit enumerability.
func (o *Object) Define(name string, value any, enumerable bool) *Object {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[name]; ok {
		o.slots[i] = slot{name: name, value: value, enumerable: enumerable}
		return o
	}
	o.index[name] = len(o.slots)
	o.slots = append(o.slots, slot{name: name, value: value, enumerable: enumerable})
	return o
}

// Delete removes an own attribute and reports whether it existed.
func (o *Object) Delete(name string) bool {
	i, ok := o.index[name]
	if !ok {
		return false
	}
	o.slots = append(o.slots[:i], o.slots[i+1:]...)
	delete(o.index, name)
	for j := i; j < len(o.slots); j++ {
		o.index[o.slots[j].name] = j
	}
	return true
}

// Get returns an own attribute without consulting the prototype chain.
func (o *Object) Get(name string) (any, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.slots[i].value, true
}

// HasOwn reports whether name is an own attribute, enumerable or not.
func (o *Object) HasOwn(name string) bool {
	_, ok := o.index[name]
	return ok
}

// OwnKeys returns the enumerable own attribute names in insertion order.
func (o *Object) OwnKeys() []string {
	var keys []string
	for _, s := range o.slots {
		if s.enumerable {
			keys = append(keys, s.name)
		}
	}
	return keys
}

// ---------------------------------------------------------------------------
// Delegation
// ---------------------------------------------------------------------------

// Prototype returns the object o delegates to, nil at the end of the chain.
func (o *Object) Prototype() *Object {
	return o.proto
}

// SetPrototype changes the object o delegates to.
func (o *Object) SetPrototype(proto *Object) error {
	for p := proto; p != nil; p = p.proto {
		if p == o {
			return fmt.Errorf("%w: %p", ErrCyclicPrototype, o)
		}
	}
	o.proto = proto
	return nil
}

// Lookup resolves name on o, then along its prototype chain.
func (o *Object) Lookup(name string) (any, bool) {
	for current := o; current != nil; current = current.proto {
		if v, ok := current.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Keys returns the enumerable names reachable from o in for-in order: own
// names first, then each prototype's. A name already present at a nearer
// level, enumerable or not, is skipped.
func (o *Object) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for current := o; current != nil; current = current.proto {
		for _, s := range current.slots {
			if seen[s.name] {
				continue
			}
			seen[s.name] = true
			if s.enumerable {
				keys = append(keys, s.name)
			}
		}
	}
	return keys
}

package object

import (
	"sync"

	"github.com/chazu/jsreflect/params"
)

// Function is a callable value that knows its own source text. Like any
// function object it is also a composite: its non-enumerable "prototype"
// slot holds the object its instances delegate to, and that object's
// non-enumerable "constructor" slot points back at the function.
type Function struct {
	Object
	name   string
	source string
}

// NewFunction creates a function from its source text, taking the name
// from the declaration. Arrow functions and anonymous declarations get "".
func NewFunction(source string) *Function {
	return Named(params.Name(source), source)
}

// Named creates a function with an explicit name.
func Named(name, source string) *Function {
	fn := &Function{name: name, source: source}
	proto := New(Root())
	proto.Define("constructor", fn, false)
	fn.Define("prototype", proto, false)
	return fn
}

// Name returns the function's name.
func (f *Function) Name() string {
	return f.name
}

// Source returns the function's source text.
func (f *Function) Source() string {
	return f.source
}

// TypeTag reports the function's canonical class.
func (f *Function) TypeTag() string {
	return "Function"
}

// Proto returns the object instances of f delegate to, nil if the
// "prototype" slot was replaced with something other than an object.
func (f *Function) Proto() *Object {
	v, _ := f.Get("prototype")
	p, _ := v.(*Object)
	return p
}

// Construct creates an instance of f and runs init on it, the way a
// constructor body populates "this".
func (f *Function) Construct(init func(this *Object)) *Object {
	this := New(f.Proto())
	if init != nil {
		init(this)
	}
	return this
}

// ---------------------------------------------------------------------------
// Root prototype
// ---------------------------------------------------------------------------

var (
	rootOnce sync.Once
	root     *Object
)

// Root returns the shared base prototype. Its only slot is a
// non-enumerable "constructor" holding the built-in Object function.
func Root() *Object {
	rootOnce.Do(func() {
		root = New(nil)
		fn := &Function{name: "Object", source: "function Object() { [native code] }"}
		fn.Define("prototype", root, false)
		root.Define("constructor", fn, false)
	})
	return root
}

// ---------------------------------------------------------------------------
// Undefined
// ---------------------------------------------------------------------------

type undefined struct{}

func (undefined) TypeTag() string { return "Undefined" }

func (undefined) String() string { return "undefined" }

// Undefined is the value of an attribute that exists but holds nothing.
var Undefined = undefined{}

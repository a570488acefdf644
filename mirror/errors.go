package mirror

// Kind identifies a reflection failure. Kinds form a closed tree: the
// root, two families, and the four leaves the introspectors return.
type Kind int

const (
	KindReflection Kind = iota
	KindObject
	KindNotAnObject
	KindMethodNotFound
	KindPropertyNotFound
	KindFunc
	KindNotACallable
)

var kindInfo = [...]struct {
	name    string
	message string
	parent  Kind
}{
	KindReflection:       {"ReflectionError", "", KindReflection},
	KindObject:           {"ObjError", "", KindReflection},
	KindNotAnObject:      {"ObjNotObjectError", "Expected an object or function.", KindObject},
	KindMethodNotFound:   {"ObjMethodNotExistError", "The method does not exist on the object or function.", KindObject},
	KindPropertyNotFound: {"ObjPropertyNotExistError", "The property does not exist on the object or function.", KindObject},
	KindFunc:             {"FuncError", "", KindReflection},
	KindNotACallable:     {"FuncNotFunctionError", "Expected a function.", KindFunc},
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return "Kind(?)"
	}
	return kindInfo[k].name
}

// Message returns the fixed message of a leaf kind, "" for the root and
// the families.
func (k Kind) Message() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return ""
	}
	return kindInfo[k].message
}

// Parent returns the enclosing kind. The root has no parent.
func (k Kind) Parent() (Kind, bool) {
	if k <= KindReflection || int(k) >= len(kindInfo) {
		return KindReflection, false
	}
	return kindInfo[k].parent, true
}

// Error is a reflection failure. It carries no payload beyond its kind.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	if msg := e.Kind.Message(); msg != "" {
		return msg
	}
	return e.Kind.String()
}

// Is reports whether target is e's kind or one of its ancestors, so that
// errors.Is(err, ErrObject) matches every object-introspection failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	for k := e.Kind; ; {
		if k == t.Kind {
			return true
		}
		parent, ok := k.Parent()
		if !ok {
			return false
		}
		k = parent
	}
}

// Sentinel errors. The introspectors return the leaves as-is.
var (
	ErrReflection       = &Error{Kind: KindReflection}
	ErrObject           = &Error{Kind: KindObject}
	ErrNotAnObject      = &Error{Kind: KindNotAnObject}
	ErrMethodNotFound   = &Error{Kind: KindMethodNotFound}
	ErrPropertyNotFound = &Error{Kind: KindPropertyNotFound}
	ErrFunc             = &Error{Kind: KindFunc}
	ErrNotACallable     = &Error{Kind: KindNotACallable}
)

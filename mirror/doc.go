// Package mirror implements runtime introspection of dynamic values.
//
// This package contains:
//   - TypeOf, the canonical lowercase type tag of any value
//   - Obj, an introspector for composite values with own and delegated
//     (prototype chain) attributes
//   - Func, an introspector for callables that recovers declared
//     parameter names from source text
//   - the Error taxonomy returned by both introspectors
//
// The value model itself is supplied by a host through the Composite,
// Callable and Tagger contracts. Plain Go maps, structs and funcs are
// adapted automatically.
package mirror

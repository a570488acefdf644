// Package report turns introspection results into structured records
// that can be printed or serialized.
package report

import (
	"fmt"

	"github.com/chazu/jsreflect/mirror"
)

// Options controls what Build collects.
type Options struct {
	Target string       // label recorded on the report, usually the expression inspected
	Scope  mirror.Scope // attribute scope for objects
}

// Report describes one inspected value. Only the fields that apply to the
// value's tag are filled.
type Report struct {
	Target                string         `json:"target" yaml:"target"`
	Tag                   string         `json:"tag" yaml:"tag"`
	Scope                 string         `json:"scope,omitempty" yaml:"scope,omitempty"`
	Name                  string         `json:"name,omitempty" yaml:"name,omitempty"`
	Constructor           string         `json:"constructor,omitempty" yaml:"constructor,omitempty"`
	ConstructorParameters []string       `json:"constructorParameters,omitempty" yaml:"constructorParameters,omitempty"`
	Properties            []PropertyInfo `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods               []MethodInfo   `json:"methods,omitempty" yaml:"methods,omitempty"`
	Parameters            []string       `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// PropertyInfo describes a non-callable attribute.
type PropertyInfo struct {
	Name string `json:"name" yaml:"name"`
	Tag  string `json:"tag" yaml:"tag"`
	Own  bool   `json:"own" yaml:"own"`
}

// MethodInfo describes a callable attribute.
type MethodInfo struct {
	Name       string   `json:"name" yaml:"name"`
	Parameters []string `json:"parameters" yaml:"parameters"`
	Own        bool     `json:"own" yaml:"own"`
}

// Build inspects v. Objects get their constructor and attributes,
// functions their name and parameters; any other value gets its tag only.
func Build(v any, opts Options) (*Report, error) {
	r := &Report{
		Target: opts.Target,
		Tag:    mirror.TypeOf(v),
	}

	switch r.Tag {
	case mirror.TagObject:
		if err := r.fillObject(v, opts.Scope); err != nil {
			return nil, err
		}
	case mirror.TagFunction:
		f, err := mirror.NewFunc(v)
		if err != nil {
			return nil, err
		}
		r.Name = f.Name()
		r.Parameters = f.Parameters()
	}
	return r, nil
}

func (r *Report) fillObject(v any, scope mirror.Scope) error {
	o, err := mirror.NewObj(v)
	if err != nil {
		return err
	}
	r.Scope = scope.String()
	r.Name = o.Name()

	if ctor := o.Constructor(); mirror.IsMethod(ctor) {
		if f, err := mirror.NewFunc(ctor); err == nil {
			r.Constructor = f.Source()
		}
		// The constructor just resolved as a method, so this can only fail
		// with ErrMethodNotFound if a getter changed it in between.
		params, err := o.ConstructorParameters()
		if err != nil {
			return fmt.Errorf("constructor parameters: %w", err)
		}
		// Native constructors have nothing to report.
		if len(params) > 0 {
			r.ConstructorParameters = params
		}
	}

	own := o.Value()
	for _, name := range o.Properties(scope) {
		pv, err := o.Property(name, scope)
		if err != nil {
			return err
		}
		r.Properties = append(r.Properties, PropertyInfo{
			Name: name,
			Tag:  mirror.TypeOf(pv),
			Own:  own.HasOwn(name),
		})
	}
	for _, name := range o.Methods(scope) {
		params, err := o.MethodParameters(name)
		if err != nil {
			return err
		}
		r.Methods = append(r.Methods, MethodInfo{
			Name:       name,
			Parameters: params,
			Own:        own.HasOwn(name),
		})
	}
	return nil
}

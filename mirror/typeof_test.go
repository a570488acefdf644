package mirror

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/chazu/jsreflect/object"
)

type customTagged struct{}

func (customTagged) TypeTag() string { return "Math" }

type point struct{ X, Y int }

func TestTypeOf(t *testing.T) {
	var nilMap map[string]any
	var nilFunc func()
	var nilObject *object.Object
	now := time.Now()
	n := 5

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, TagNull},
		{"nil map", nilMap, TagNull},
		{"nil func", nilFunc, TagNull},
		{"nil host object", nilObject, TagNull},
		{"undefined", object.Undefined, TagUndefined},
		{"regexp", regexp.MustCompile(`\s`), TagRegExp},
		{"ecmascript regexp", regexp2.MustCompile(`\s`, regexp2.ECMAScript), TagRegExp},
		{"bool", true, TagBoolean},
		{"slice", []any{}, TagArray},
		{"array", [2]int{1, 2}, TagArray},
		{"int", 1, TagNumber},
		{"uint8", uint8(1), TagNumber},
		{"float", 1.5, TagNumber},
		{"complex", complex(1, 2), TagNumber},
		{"pointer to int", &n, TagNumber},
		{"string", "hello", TagString},
		{"date", now, TagDate},
		{"date pointer", &now, TagDate},
		{"error", errors.New("boom"), TagError},
		{"reflection error", ErrMethodNotFound, TagError},
		{"go func", func() {}, TagFunction},
		{"host function", object.NewFunction("function f() {}"), TagFunction},
		{"host object", object.New(nil), TagObject},
		{"string map", map[string]int{}, TagObject},
		{"struct", point{}, TagObject},
		{"struct pointer", &point{}, TagObject},
		{"custom tag", customTagged{}, "math"},
		{"int map", map[int]int{}, "map"},
		{"channel", make(chan int), "chan"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeOf(tc.value); got != tc.want {
				t.Errorf("TypeOf(%T) = %q, expected %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestTypeOf_Stable(t *testing.T) {
	values := []any{nil, 1, "s", object.NewPlain(), []int{}, func() {}}
	for _, v := range values {
		if first, second := TypeOf(v), TypeOf(v); first != second {
			t.Errorf("TypeOf(%T) changed between calls: %q then %q", v, first, second)
		}
	}
}

func TestIsMethod(t *testing.T) {
	if !IsMethod(object.NewFunction("function f() {}")) {
		t.Error("expected host function to be a method")
	}
	if !IsMethod(func(int) {}) {
		t.Error("expected Go func to be a method")
	}
	if IsMethod(object.NewPlain()) {
		t.Error("expected object not to be a method")
	}
	if IsMethod(nil) {
		t.Error("expected nil not to be a method")
	}
}

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/chazu/jsreflect/gojahost"
	"github.com/chazu/jsreflect/manifest"
	"github.com/chazu/jsreflect/mirror"
	"github.com/chazu/jsreflect/object"
	"github.com/chazu/jsreflect/report"
)

// ---------------------------------------------------------------------------
// Integration test helpers
// ---------------------------------------------------------------------------

const exampleDir = "../../examples/greeter"

// loadExample evaluates the example project's scripts in a fresh host.
func loadExample(t *testing.T) (*manifest.Manifest, *gojahost.Host) {
	t.Helper()
	m, err := manifest.Load(exampleDir)
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	h := gojahost.New()
	for _, path := range m.ScriptPaths() {
		if err := h.RunFile(path); err != nil {
			t.Fatalf("run %s: %v", path, err)
		}
	}
	return m, h
}

// exampleSource returns the source of a top-level function in the example
// script, as the JS engine renders it.
func exampleSource(t *testing.T, h *gojahost.Host, expr string) string {
	t.Helper()
	v, err := h.Eval(expr)
	if err != nil {
		t.Fatalf("eval %s: %v", expr, err)
	}
	f, err := mirror.NewFunc(v)
	if err != nil {
		t.Fatalf("NewFunc(%s): %v", expr, err)
	}
	return f.Source()
}

// nativeGreeter rebuilds the example's greeter with the object package,
// reusing the engine's function sources.
func nativeGreeter(t *testing.T, h *gojahost.Host) *object.Object {
	t.Helper()
	ctor := object.NewFunction(exampleSource(t, h, "Greeter"))
	proto := ctor.Proto()
	proto.Set("language", "en")
	proto.Set("greet", object.NewFunction(exampleSource(t, h, "Greeter.prototype.greet")))
	proto.Set("farewell", object.NewFunction(exampleSource(t, h, "Greeter.prototype.farewell")))
	return ctor.Construct(func(this *object.Object) {
		this.Set("greeting", "Hello")
		this.Set("punctuation", "!")
		this.Set("sub", object.NewPlain().Set("sayHello", object.NewFunction("function () { return 'Hi People !'; }")))
	})
}

// snapshot captures everything the mirror reports about an object.
type snapshot struct {
	Name        string
	CtorParams  []string
	ChainProps  []string
	OwnProps    []string
	ChainMeths  []string
	OwnMeths    []string
	Everything  []string
	MethodParms map[string][]string
}

func snap(t *testing.T, v any) snapshot {
	t.Helper()
	o, err := mirror.NewObj(v)
	if err != nil {
		t.Fatalf("NewObj: %v", err)
	}
	ctorParams, err := o.ConstructorParameters()
	if err != nil {
		t.Fatalf("ConstructorParameters: %v", err)
	}
	s := snapshot{
		Name:        o.Name(),
		CtorParams:  ctorParams,
		ChainProps:  o.Properties(mirror.ScopeChain),
		OwnProps:    o.Properties(mirror.ScopeOwn),
		ChainMeths:  o.Methods(mirror.ScopeChain),
		OwnMeths:    o.Methods(mirror.ScopeOwn),
		Everything:  o.PropertiesAndMethods(mirror.ScopeChain),
		MethodParms: make(map[string][]string),
	}
	for _, name := range s.ChainMeths {
		params, err := o.MethodParameters(name)
		if err != nil {
			t.Fatalf("MethodParameters(%s): %v", name, err)
		}
		s.MethodParms[name] = params
	}
	return s
}

// ---------------------------------------------------------------------------
// 1. Example project through the JS engine
// ---------------------------------------------------------------------------

func TestIntegrationE2E_ExampleProject(t *testing.T) {
	_, h := loadExample(t)
	greeter, err := h.Global("greeter")
	if err != nil {
		t.Fatal(err)
	}

	want := snapshot{
		Name:       "Greeter",
		CtorParams: []string{"greeting", "punctuation"},
		ChainProps: []string{"greeting", "punctuation", "sub", "language"},
		OwnProps:   []string{"greeting", "punctuation", "sub"},
		ChainMeths: []string{"greet", "farewell"},
		OwnMeths:   []string{},
		Everything: []string{"greeting", "punctuation", "sub", "language", "greet", "farewell"},
		MethodParms: map[string][]string{
			"greet":    {"name", "times"},
			"farewell": {"name"},
		},
	}
	if got := snap(t, greeter); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected snapshot:\n got  %+v\n want %+v", got, want)
	}

	shout, err := h.Global("shout")
	if err != nil {
		t.Fatal(err)
	}
	f, err := mirror.NewFunc(shout)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Parameters(); !reflect.DeepEqual(got, []string{"text", "volume"}) {
		t.Errorf("expected [text volume], got %v", got)
	}
}

// ---------------------------------------------------------------------------
// 2. Both hosts agree on the same shape
// ---------------------------------------------------------------------------

func TestIntegrationE2E_HostsAgree(t *testing.T) {
	_, h := loadExample(t)
	engine, err := h.Global("greeter")
	if err != nil {
		t.Fatal(err)
	}
	native := nativeGreeter(t, h)

	if got, want := snap(t, native), snap(t, engine); !reflect.DeepEqual(got, want) {
		t.Errorf("hosts disagree:\n native %+v\n engine %+v", got, want)
	}

	for _, scope := range []mirror.Scope{mirror.ScopeChain, mirror.ScopeOwn} {
		nr, err := report.Build(native, report.Options{Target: "greeter", Scope: scope})
		if err != nil {
			t.Fatal(err)
		}
		er, err := report.Build(engine, report.Options{Target: "greeter", Scope: scope})
		if err != nil {
			t.Fatal(err)
		}
		if nr.String() != er.String() {
			t.Errorf("%s reports disagree:\n native:\n%s\n engine:\n%s", scope, nr, er)
		}
	}
}

// ---------------------------------------------------------------------------
// 3. Manifest-driven reports
// ---------------------------------------------------------------------------

func TestIntegrationE2E_ManifestReports(t *testing.T) {
	m, h := loadExample(t)

	var reports []*report.Report
	for _, target := range m.Inspect.Targets {
		v, err := h.Eval(target)
		if err != nil {
			t.Fatalf("eval %s: %v", target, err)
		}
		r, err := report.Build(v, report.Options{Target: target, Scope: m.Scope()})
		if err != nil {
			t.Fatalf("report %s: %v", target, err)
		}
		reports = append(reports, r)
	}

	var buf bytes.Buffer
	if err := report.Encode(&buf, m.Format(), reports); err != nil {
		t.Fatal(err)
	}

	golden, err := os.ReadFile(filepath.Join("testdata", "greeter.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != string(golden) {
		t.Errorf("output differs from golden file:\n%s", diffLines(got, string(golden)))
	}
}

func diffLines(got, want string) string {
	g, w := strings.Split(got, "\n"), strings.Split(want, "\n")
	var sb strings.Builder
	for i := 0; i < max(len(g), len(w)); i++ {
		var gl, wl string
		if i < len(g) {
			gl = g[i]
		}
		if i < len(w) {
			wl = w[i]
		}
		if gl != wl {
			sb.WriteString("- " + wl + "\n+ " + gl + "\n")
		}
	}
	return sb.String()
}

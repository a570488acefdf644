// jsreflect evaluates JavaScript files and reports the structure of the
// values they define: constructors, properties, methods and parameters.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/jsreflect/gojahost"
	"github.com/chazu/jsreflect/manifest"
	"github.com/chazu/jsreflect/mirror"
	"github.com/chazu/jsreflect/report"
)

var log = commonlog.GetLogger("jsreflect.cli")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if err := execute(args, stdout, stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	targets   []string
	format    string
	own       bool
	configDir string
	verbosity int
	scripts   []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("jsreflect", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringArrayVarP(&opts.targets, "target", "t", nil, "global name or expression to inspect (repeatable)")
	flagSet.StringVarP(&opts.format, "format", "f", "", "output format: text, json, yaml, cbor (default from jsreflect.toml, else text)")
	flagSet.BoolVar(&opts.own, "own", false, "list own attributes only")
	flagSet.StringVarP(&opts.configDir, "config", "c", "", "directory holding jsreflect.toml (default: search upward from the working directory)")
	flagSet.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	opts.scripts = flagSet.Args()
	return &opts, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Usage: jsreflect [flags] [script.js ...]

Evaluates the scripts listed in jsreflect.toml, then those given as
arguments, and reports on each target.

Flags:
%s
Examples:
  jsreflect -t myObject model.js
  jsreflect -t MyObject -t myObject --own -f json model.js
  jsreflect -c ./project
`, flagSet.FlagUsages())
}

func execute(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	var m *manifest.Manifest
	if opts.configDir != "" {
		m, err = manifest.Load(opts.configDir)
	} else {
		m, err = manifest.FindAndLoad(".")
	}
	if err != nil {
		return err
	}

	verbosity := opts.verbosity
	format := report.FormatText
	scope := mirror.ScopeChain
	var scripts, targets []string
	if m != nil {
		verbosity = max(verbosity, m.Log.Verbosity)
		format = m.Format()
		scope = m.Scope()
		scripts = m.ScriptPaths()
		targets = append(targets, m.Inspect.Targets...)
	}
	commonlog.Configure(verbosity, nil)
	if m != nil {
		log.Infof("using manifest in %s", m.Dir)
	}

	if opts.format != "" {
		if format, err = report.ParseFormat(opts.format); err != nil {
			return err
		}
	}
	if opts.own {
		scope = mirror.ScopeOwn
	}
	scripts = append(scripts, opts.scripts...)
	targets = append(targets, opts.targets...)
	if len(targets) == 0 {
		return errors.New("no targets to inspect (use --target or [inspect] targets)")
	}

	host := gojahost.New()
	for _, path := range scripts {
		if err := host.RunFile(path); err != nil {
			return err
		}
	}
	log.Infof("loaded %d scripts", len(scripts))

	reports := make([]*report.Report, 0, len(targets))
	for _, target := range targets {
		v, err := host.Eval(target)
		if err != nil {
			return err
		}
		r, err := report.Build(v, report.Options{Target: target, Scope: scope})
		if err != nil {
			return fmt.Errorf("inspect %s: %w", target, err)
		}
		log.Debugf("inspected %s: %s", target, r.Tag)
		reports = append(reports, r)
	}

	return report.Encode(stdout, format, reports)
}

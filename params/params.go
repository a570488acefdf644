// Package params recovers the declared parameter names of a JavaScript
// callable from its rendered source text.
//
// The parser is lexical: it recognizes the traditional declaration form
// (function name(a, b) {...}) and the arrow forms ((a, b) => ... and
// a => ...), strips comments and default-value initializers, and splits
// what remains on commas. Destructured and rest parameters are not
// understood, and a default expression that itself contains a top-level
// comma or parenthesis outside a string literal ends the parameter early.
package params

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Delimiter separates parameters in a cleaned parameter list.
const Delimiter = ","

// String literal alternatives, in ECMAScript regex syntax.
const stringLiteral = `'(?:\\.|[^'\\\r\n])*'|"(?:\\.|[^"\\\r\n])*"|` + "`(?:\\\\.|[^`\\\\])*`"

// Comments. Each can only be consumed one way: a block comment stops at
// its first "*/" and a line comment runs to the end of the line.
const (
	blockComment = `/\*(?:[^*]|\*(?!/))*\*/`
	lineComment  = `//[^\r\n]*(?![^\r\n])`
)

// Raw parameter text: string literals and comments are consumed whole so
// that a ")" inside them does not close the list. The alternatives are
// disjoint, so a failed match backtracks in polynomial time.
const rawList = `((?:` + stringLiteral + `|` + blockComment + `|` + lineComment + `|[^)'"` + "`" + `/]|/(?![*/]))*?)`

// Declarations are anchored at the start of the source text.
const opts = regexp2.ECMAScript

// matchTimeout bounds a single match. A match that times out is treated
// as no match.
const matchTimeout = time.Second

var (
	declarationRe = compile(`^\s*(?:async\s+)?function\b\s*[^(]*\(\s*` + rawList + `\s*\)`)
	arrowRe       = compile(`^\s*(?:async\b\s*)?(?:\(\s*` + rawList + `\s*\)|([A-Za-z_$][\w$]*))\s*=>`)
	nameRe        = compile(`^\s*(?:async\s+)?function\b\s*\*?\s*([A-Za-z_$][\w$]*)`)

	// Line comments, block comments and default initializers. A default
	// runs to the next comma that is not inside a string or comment.
	noiseRe = compile(lineComment + `|` + blockComment + `|\s*=(?:` + stringLiteral + `|` + blockComment + `|` + lineComment + `|[^,'"` + "`" + `/]|/(?![*/]))*`)

	whitespaceRe = compile(`\s+`)
)

func compile(pattern string) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, opts)
	re.MatchTimeout = matchTimeout
	return re
}

// Parse returns the parameter names declared by source, in declaration
// order. It returns an empty slice for zero-parameter callables and for
// source text that is not a recognizable function declaration.
func Parse(source string) []string {
	raw, ok := Raw(source)
	if !ok || raw == "" {
		return []string{}
	}

	cleaned := replaceAll(noiseRe, raw)
	cleaned = replaceAll(whitespaceRe, cleaned)
	if cleaned == "" {
		return []string{}
	}

	names := strings.Split(cleaned, Delimiter)
	// A trailing comma is legal in a parameter list.
	if len(names) > 1 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}
	return names
}

// Raw returns the unprocessed text between the parentheses of the
// parameter list (or the bare identifier of a single-parameter arrow
// function), and whether source matched either declaration form.
func Raw(source string) (string, bool) {
	if m := match(declarationRe, source); m != nil {
		return m.GroupByNumber(1).String(), true
	}
	if m := match(arrowRe, source); m != nil {
		if g := m.GroupByNumber(1); len(g.Captures) > 0 {
			return g.String(), true
		}
		return m.GroupByNumber(2).String(), true
	}
	return "", false
}

// Name returns the identifier of a traditional function declaration, or
// "" when the declaration is anonymous or not in the traditional form.
func Name(source string) string {
	if m := match(nameRe, source); m != nil {
		return m.GroupByNumber(1).String()
	}
	return ""
}

// match runs re against s. regexp2 only reports errors on match
// timeouts.
func match(re *regexp2.Regexp, s string) *regexp2.Match {
	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil
	}
	return m
}

func replaceAll(re *regexp2.Regexp, s string) string {
	out, err := re.Replace(s, "", -1, -1)
	if err != nil {
		return s
	}
	return out
}

// Package pattern compiles named regular-expression fragments for the
// tokenizer.
//
// The tokenizer probes every pattern at a fixed scan offset and must never
// accept a match that starts later in the input. To guarantee that, every
// user-supplied pattern source is rewritten to be start-anchored before it is
// handed to the regex engine: caller-written `^` anchors are stripped
// (wherever they appear, including per-alternation-branch anchors) and the
// cleaned source is wrapped as `^(?:...)`.
//
// Compilation is delegated to coregex; this package never interprets match
// semantics itself beyond the anchoring rewrite.
package pattern

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"
)

// Pattern is a named regex fragment supplied by the caller.
//
// Names need not be unique: duplicate names are legal and are compiled and
// dispatched independently.
type Pattern struct {
	// Name is the token name emitted when the pattern matches.
	Name string

	// Source is the regex fragment, using coregex (stdlib-compatible)
	// syntax. Anchors are optional; Prepare forces anchoring either way.
	Source string
}

// Compiled pairs a pattern name with its anchored, compiled matcher.
//
// The Regex is guaranteed by construction to match only at the start of the
// text it is probed against, so probing input[offset:] answers "does this
// pattern match beginning exactly at offset?".
type Compiled struct {
	Name  string
	Regex *coregex.Regex
}

// CompileError reports a pattern that failed to compile during preparation.
// It wraps the underlying coregex diagnostic.
type CompileError struct {
	// Name is the name of the offending pattern.
	Name string

	// Err is the underlying compile failure.
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern %q failed to compile: %v", e.Name, e.Err)
}

// Unwrap returns the underlying compile failure.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ForceStartAnchor rewrites source so that the compiled pattern can only
// match at the start of the probed text.
//
// Every `^` is removed unless the immediately preceding character is `[`
// (character-class negation) or `\` (escaped literal caret); the cleaned
// source is then wrapped as `^(?:...)`. Removal applies anywhere in the
// source, not only at the front, so alternations written as `^x|^y` collapse
// to a single anchored group.
//
// This is a textual heuristic over single preceding characters, not a regex
// parse: a `^` used for something other than anchoring or class negation
// inside nested constructs is outside its contract.
//
// Example:
//
//	pattern.ForceStartAnchor(`^x|^y`) // "^(?:x|y)"
//	pattern.ForceStartAnchor(`\d+`)   // "^(?:\d+)"
func ForceStartAnchor(source string) string {
	var b strings.Builder
	b.Grow(len(source) + 5)
	b.WriteString("^(?:")

	var prev rune
	for _, r := range source {
		removable := r == '^' && prev != '[' && prev != '\\'
		prev = r
		if removable {
			continue
		}
		b.WriteRune(r)
	}

	b.WriteString(")")
	return b.String()
}

// Prepare anchor-forces and compiles the given patterns, preserving their
// order (the tokenizer probes patterns first-to-last and takes the first
// non-empty match).
//
// Preparation is all-or-nothing: the first pattern that fails to compile
// aborts with a *CompileError and no compiled sequence is returned, even if
// every other pattern is valid.
//
// Example:
//
//	compiled, err := pattern.Prepare([]pattern.Pattern{
//		{Name: "digit", Source: `[0-9]`},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	compiled[0].Regex.String() // "^(?:[0-9])"
func Prepare(patterns []Pattern) ([]Compiled, error) {
	compiled := make([]Compiled, 0, len(patterns))
	for _, p := range patterns {
		re, err := coregex.Compile(ForceStartAnchor(p.Source))
		if err != nil {
			return nil, &CompileError{Name: p.Name, Err: err}
		}
		compiled = append(compiled, Compiled{Name: p.Name, Regex: re})
	}
	return compiled, nil
}

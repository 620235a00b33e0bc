// Package tokenizer provides a configurable lexical scanner built on the
// coregex matching engine.
//
// A Tokenizer is configured once with named token definitions — exact literal
// strings (operators, keywords) and regex patterns (numbers, identifiers,
// strings) — and then converts input text into a sequence of named tokens, or
// reports the first character it cannot classify together with its exact
// position. It is a building block for parsers, not a parser itself: it has
// no grammar and no recursive structure.
//
// Matching works per scan position:
//   - literals are resolved through a prefix trie that always finds the
//     longest literal starting at the position
//   - patterns are force-anchored at compile time and probed in the order
//     they were supplied; the first non-empty pattern match is taken
//   - the longer of the two candidates wins; exact length ties go to the
//     literal by default (configurable, see Config.TieBreak)
//
// Basic usage:
//
//	t, err := tokenizer.New(
//		[]tokenizer.Literal{
//			{Name: "add", Text: "+"},
//			{Name: "increment", Text: "++"},
//		},
//		[]tokenizer.Pattern{
//			{Name: "digit", Source: `[0-9]`},
//		},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tokens, err := t.TokenizeAll("1++2")
//	// [{digit 1} {increment ++} {digit 2}]
//
// The lazy form supports early termination and, optionally, multi-error
// scans:
//
//	for tok, err := range t.Tokenize(input) {
//		if err != nil {
//			// first unclassifiable character
//			break
//		}
//		use(tok)
//	}
//
// A Tokenizer is immutable after construction and safe for concurrent use:
// any number of goroutines may scan different inputs against the same
// instance without locking.
package tokenizer

import (
	"unicode/utf8"

	"github.com/coregx/tokenizer/literal"
	"github.com/coregx/tokenizer/pattern"
)

// Literal is a named exact-match string. Alias for literal.Entry.
type Literal = literal.Entry

// Pattern is a named regex fragment. Alias for pattern.Pattern.
type Pattern = pattern.Pattern

// Tokenizer is an immutable scanning configuration: compiled anchored
// patterns, a literal prefix trie, and the dispatch options. Construct with
// New or NewWithConfig; safe for concurrent use.
type Tokenizer struct {
	patterns []pattern.Compiled
	trie     *literal.Trie
	config   Config

	ignored     map[rune]bool
	ignoreSpace bool

	// charmap is the single-character fast path: when there are no
	// patterns and every literal is exactly one rune, dispatch is a map
	// lookup instead of a trie walk. nil when inactive.
	charmap map[rune]string
}

// New builds a Tokenizer from the given literals and patterns using
// DefaultConfig.
//
// Construction is all-or-nothing: if any pattern fails to compile, an
// *InvalidPatternError is returned and no partially built Tokenizer is
// exposed. Duplicate names, in both literals and patterns, are legal and kept
// as independent dispatch candidates.
//
// Example:
//
//	t, err := tokenizer.New(nil, []tokenizer.Pattern{common.Word})
func New(literals []Literal, patterns []Pattern) (*Tokenizer, error) {
	return NewWithConfig(literals, patterns, DefaultConfig())
}

// NewWithConfig is New with an explicit configuration.
//
// Example:
//
//	config := tokenizer.DefaultConfig()
//	config.SuppressUnknown = true
//	t, err := tokenizer.NewWithConfig(literals, patterns, config)
func NewWithConfig(literals []Literal, patterns []Pattern, config Config) (*Tokenizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	compiled, err := pattern.Prepare(patterns)
	if err != nil {
		return nil, err
	}

	t := &Tokenizer{
		patterns:    compiled,
		trie:        literal.BuildTrie(literals),
		config:      config,
		ignoreSpace: config.IgnoreWhitespace,
		charmap:     singleRuneMap(literals, compiled),
	}

	if len(config.IgnoredCharacters) > 0 {
		t.ignored = make(map[rune]bool, len(config.IgnoredCharacters))
		for _, r := range config.IgnoredCharacters {
			t.ignored[r] = true
		}
	}

	return t, nil
}

// Config returns a copy of the configuration the Tokenizer was built with.
func (t *Tokenizer) Config() Config {
	return t.config
}

// singleRuneMap returns the rune→name dispatch map when the configuration
// qualifies for the fast path, nil otherwise. Later duplicate texts overwrite
// earlier ones, matching the trie's terminal-value overwrite order.
func singleRuneMap(literals []Literal, patterns []pattern.Compiled) map[rune]string {
	if len(patterns) > 0 || len(literals) == 0 {
		return nil
	}
	m := make(map[rune]string, len(literals))
	for _, e := range literals {
		if e.Text == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(e.Text)
		if size != len(e.Text) {
			return nil
		}
		m[r] = e.Name
	}
	return m
}

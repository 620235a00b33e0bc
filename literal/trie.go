// Package literal provides exact-string token matching for the tokenizer.
//
// Literals are fixed strings (operators, keywords, punctuation) that should be
// recognized as whole tokens regardless of surrounding context. The package
// stores them in a prefix trie so that a single probe at a scan position
// answers "what is the longest literal starting here?" in time proportional to
// the literal's length, independent of how many literals are registered.
//
// Key concepts:
//   - An Entry is a (name, text) pair supplied at configuration time
//   - A Trie shares common prefixes among all literal texts
//   - LongestMatch always prefers the longest literal that is a prefix of the
//     remaining input, never a shorter one that also matches
//
// A Trie is built once and never mutated afterwards, so a single instance may
// be shared by any number of concurrent scans without locking.
package literal

import (
	"sort"
	"unicode/utf8"
)

// Entry is a named literal string to be recognized as a single token.
//
// Example:
//
//	plus := literal.Entry{Name: "add", Text: "+"}
type Entry struct {
	// Name is the token name emitted when Text matches. Names need not be
	// unique across entries.
	Name string

	// Text is the exact string to match. Entries with empty Text are
	// ignored at build time: they could only ever produce a zero-length
	// match, which the dispatcher never accepts.
	Text string
}

// node is a single trie node. A node may carry a terminal value and children
// at the same time (one literal is a prefix of another); a node with neither
// is a pure routing node.
type node struct {
	value    string
	terminal bool
	children map[rune]*node
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}
	return n.children[r]
}

// Trie is a prefix tree over literal texts, keyed rune by rune.
//
// The zero value is not usable; construct with BuildTrie. Once built, a Trie
// is read-only and safe for concurrent use.
type Trie struct {
	root node
}

// BuildTrie constructs a Trie from the given entries.
//
// Entries are inserted longest-text-first (a stable sort, so equal-length
// entries keep their relative order). If two entries carry identical Text, the
// one inserted later overwrites the terminal value at the shared node; callers
// that need deterministic names must not supply duplicate texts under
// different names.
//
// Example:
//
//	trie := literal.BuildTrie([]literal.Entry{
//		{Name: "add", Text: "+"},
//		{Name: "increment", Text: "++"},
//	})
//	n, name, ok := trie.LongestMatch("++x", 0)
//	// n == 2, name == "increment", ok == true
func BuildTrie(entries []Entry) *Trie {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Text) > len(sorted[j].Text)
	})

	t := &Trie{}
	for _, e := range sorted {
		t.insert(e)
	}
	return t
}

func (t *Trie) insert(e Entry) {
	if e.Text == "" {
		return
	}

	cur := &t.root
	rest := e.Text
	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]

		if cur.children == nil {
			cur.children = make(map[rune]*node)
		}
		next := cur.children[r]
		if next == nil {
			next = &node{}
			cur.children[r] = next
		}
		cur = next
	}

	// Set the terminal value without disturbing any children already
	// present, so a short literal and a longer one sharing a prefix
	// coexist regardless of insertion order.
	cur.value = e.Name
	cur.terminal = true
}

// LongestMatch returns the longest literal whose full text is a prefix of
// input[at:]. length is the matched length in bytes; name is the entry name.
// ok reports whether any literal matched at all.
//
// The descent records the best (longest) terminal seen so far before each
// step, so stopping early — either because no child edge exists for the next
// rune or because the input is exhausted — still yields the longest literal
// that fully matched.
//
// Example:
//
//	trie := literal.BuildTrie([]literal.Entry{
//		{Name: "arrow", Text: "->"},
//		{Name: "sub", Text: "-"},
//	})
//	n, name, _ := trie.LongestMatch("a->b", 1)
//	// n == 2, name == "arrow"
func (t *Trie) LongestMatch(input string, at int) (length int, name string, ok bool) {
	cur := &t.root
	consumed := 0

	for _, r := range input[at:] {
		if cur.terminal {
			length, name, ok = consumed, cur.value, true
		}

		next := cur.child(r)
		if next == nil {
			return length, name, ok
		}

		cur = next
		consumed += utf8.RuneLen(r)
	}

	// Input exhausted: a terminal at the final node is the longest match.
	if cur.terminal {
		return consumed, cur.value, true
	}
	return length, name, ok
}

package tokenizer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize scans input lazily, yielding one (Token, error) element at a time.
//
// Exactly one of the pair is meaningful per element: a successful match
// yields (token, nil); an unclassifiable character yields (Token{},
// *BadTokenError). By default the sequence stops after yielding an error;
// with Config.ContinueAfterError it advances one character and keeps
// scanning, and with Config.SuppressUnknown unmatched characters are skipped
// without being yielded at all.
//
// The returned sequence is restartable: each range over it scans the input
// from the start, and repeated ranges yield identical elements. Tokenize
// never mutates the Tokenizer, so concurrent calls are safe.
//
// Example:
//
//	for tok, err := range t.Tokenize("1++2") {
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(tok.Name, tok.Value)
//	}
func (t *Tokenizer) Tokenize(input string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		if t.config.ConvertCRLF {
			input = strings.ReplaceAll(input, "\r\n", "\n")
		}

		pos := 0     // byte offset into input
		charPos := 0 // rune index, reported in errors
		for pos < len(input) {
			r, size := utf8.DecodeRuneInString(input[pos:])

			if t.ignored[r] || (t.ignoreSpace && unicode.IsSpace(r)) {
				pos += size
				charPos++
				continue
			}

			length, name, ok := t.matchAt(input, pos)
			if ok {
				value := input[pos : pos+length]
				if !yield(Token{Name: name, Value: value}, nil) {
					return
				}
				pos += length
				charPos += utf8.RuneCountInString(value)
				continue
			}

			if t.config.SuppressUnknown {
				pos += size
				charPos++
				continue
			}

			if !yield(Token{}, &BadTokenError{Char: r, Position: charPos}) {
				return
			}
			if !t.config.ContinueAfterError {
				return
			}
			pos += size
			charPos++
		}
	}
}

// TokenizeAll scans input in one call and returns all tokens.
//
// It fails fast: the first unclassifiable character aborts the scan with a
// *BadTokenError and no partial token slice is returned, regardless of
// Config.ContinueAfterError. Empty input yields an empty slice and no error.
//
// Example:
//
//	tokens, err := t.TokenizeAll("1++2")
//	if err != nil {
//		log.Fatal(err)
//	}
func (t *Tokenizer) TokenizeAll(input string) ([]Token, error) {
	tokens := []Token{}
	for tok, err := range t.Tokenize(input) {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// matchAt resolves the winning token at byte offset pos. length is in bytes.
func (t *Tokenizer) matchAt(input string, pos int) (length int, name string, ok bool) {
	if t.charmap != nil {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if name, ok := t.charmap[r]; ok {
			return size, name, true
		}
		return 0, "", false
	}

	litLen, litName, litOK := t.trie.LongestMatch(input, pos)

	// First pattern (in configuration order) with a non-empty match. The
	// anchored rewrite guarantees loc[0] == 0 whenever loc is non-nil.
	var patLen int
	var patName string
	var patOK bool
	rest := input[pos:]
	for _, p := range t.patterns {
		loc := p.Regex.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		patLen, patName, patOK = loc[1], p.Name, true
		break
	}

	switch {
	case litOK && (!patOK || litLen > patLen):
		return litLen, litName, true
	case patOK && (!litOK || patLen > litLen):
		return patLen, patName, true
	case litOK && patOK:
		// Equal lengths: policy decides.
		if t.config.TieBreak == PreferPattern {
			return patLen, patName, true
		}
		return litLen, litName, true
	}
	return 0, "", false
}

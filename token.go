package tokenizer

// Token is a single named span of the scanned input.
//
// Value is the exact matched substring, not a parsed or unescaped form;
// numeric parsing and string unescaping are left to the caller. Tokens are
// produced once and never mutated — the caller owns a returned Token.
//
// When CRLF conversion is enabled (the default), Value refers to the
// normalized input, so a matched newline is always "\n".
type Token struct {
	// Name is the name of the literal entry or pattern that matched.
	Name string

	// Value is the matched substring of the input.
	Value string
}

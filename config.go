package tokenizer

import "fmt"

// TieBreak selects the winner when a literal and a pattern match with equal
// length at the same position. Longer matches always win regardless of this
// setting; the policy only applies to exact length ties.
type TieBreak int

const (
	// PreferLiteral resolves length ties in favor of the literal match.
	// Literals represent exact, intentional tokens such as keywords and
	// operators that should not be shadowed by a looser pattern. This is
	// the default.
	PreferLiteral TieBreak = iota

	// PreferPattern resolves length ties in favor of the first matching
	// pattern.
	PreferPattern
)

// String returns a human-readable name for the policy.
func (tb TieBreak) String() string {
	switch tb {
	case PreferLiteral:
		return "PreferLiteral"
	case PreferPattern:
		return "PreferPattern"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(tb))
	}
}

// Config controls tokenizer behavior.
//
// A Config is consumed at construction time; the resulting Tokenizer is
// immutable. The zero value is valid but differs from DefaultConfig in that
// CRLF conversion is off.
//
// Example:
//
//	config := tokenizer.DefaultConfig()
//	config.IgnoreWhitespace = true
//	t, err := tokenizer.NewWithConfig(literals, patterns, config)
type Config struct {
	// ConvertCRLF normalizes the two-character sequence "\r\n" to "\n"
	// before matching, so a single newline definition covers both
	// conventions. Token values and error positions then refer to the
	// normalized input.
	// Default: true
	ConvertCRLF bool

	// TieBreak selects the winner when a literal and a pattern match with
	// the same length at the same position.
	// Default: PreferLiteral
	TieBreak TieBreak

	// IgnoreWhitespace skips Unicode whitespace characters between tokens
	// instead of attempting to match them. Skipped characters can never
	// start a token.
	// Default: false
	IgnoreWhitespace bool

	// IgnoredCharacters lists additional characters to skip between
	// tokens, with the same semantics as IgnoreWhitespace.
	IgnoredCharacters []rune

	// SuppressUnknown silently skips characters that nothing matches,
	// instead of reporting them as bad tokens.
	// Default: false
	SuppressUnknown bool

	// ContinueAfterError makes the lazy sequence advance one character
	// past an unmatched character after yielding its error, so a single
	// pass can report multiple errors. By default the sequence yields the
	// first error and stops. The aggregate form fails fast either way.
	// Default: false
	ContinueAfterError bool
}

// DefaultConfig returns the configuration used by New: CRLF conversion on,
// literal-wins tie-break, no ignored characters, errors stop the scan.
func DefaultConfig() Config {
	return Config{
		ConvertCRLF: true,
		TieBreak:    PreferLiteral,
	}
}

// Validate checks that the configuration is well-formed.
func (c Config) Validate() error {
	if c.TieBreak != PreferLiteral && c.TieBreak != PreferPattern {
		return fmt.Errorf("invalid tie-break policy: %d", int(c.TieBreak))
	}
	return nil
}

// Package common is a catalog of ready-made patterns for use with the
// tokenizer: characters, strings, words, identifiers, and the usual numeric
// shapes. Each value is a plain pattern.Pattern and can be passed to
// tokenizer.New as-is or combined with caller-defined definitions.
//
// Numeric patterns accept underscores as digit group separators (e.g.
// `2_137`), including repeated ones (`1__0`); leading and trailing
// underscores are not part of the match. Token values are the raw matched
// text — unescaping string contents and parsing numbers is up to the caller.
package common

import "github.com/coregx/tokenizer/pattern"

// Shared fragments the catalog entries are assembled from.
const (
	stringBase = `(?:\\.|[^\\])*?`
	intBase    = `[0-9](?:[0-9_]*[0-9])?`
	exponent   = `[eE][+\-]?` + intBase

	// Either an integer with a mandatory exponent, or a mantissa with a
	// dot (digits on at least one side) and an optional exponent.
	floatBase = intBase + `(?:` + exponent + `)` +
		`|(?:` + intBase + `\.(?:` + intBase + `)?|\.` + intBase + `)(?:` + exponent + `)?`
)

var (
	// Char matches a single character enclosed in single quotes (e.g. 'h').
	Char = pattern.Pattern{Name: "char", Source: `'(?:\\'|[^'])'`}

	// SingleQuotedString matches a string enclosed in single quotes
	// (e.g. 'nice fish').
	SingleQuotedString = pattern.Pattern{Name: "single_quoted_string", Source: `'` + stringBase + `'`}

	// DoubleQuotedString matches a string enclosed in double quotes
	// (e.g. "hello there").
	DoubleQuotedString = pattern.Pattern{Name: "double_quoted_string", Source: `"` + stringBase + `"`}

	// String matches a string enclosed in either single or double quotes.
	String = pattern.Pattern{Name: "string", Source: `"` + stringBase + `"|'` + stringBase + `'`}

	// Letter matches a single English letter (e.g. m), either case.
	Letter = pattern.Pattern{Name: "letter", Source: `[A-Za-z]`}

	// Word matches an English word, allowing non-consecutive internal
	// hyphens (e.g. thread-safe).
	Word = pattern.Pattern{Name: "word", Source: `[A-Za-z]+(-[A-Za-z]+)*`}

	// CName matches a C-like identifier (e.g. tokenizer_rocks): letters,
	// digits, and underscores, not starting with a digit.
	CName = pattern.Pattern{Name: "c_name", Source: `[_A-Za-z][_A-Za-z\d]*`}

	// Newline matches a newline, either "\n" or "\r\n".
	Newline = pattern.Pattern{Name: "newline", Source: `\r?\n`}

	// Digit matches a single decimal digit (e.g. 7).
	Digit = pattern.Pattern{Name: "digit", Source: `[0-9]`}

	// HexDigit matches a single hexadecimal digit (e.g. c), either case.
	HexDigit = pattern.Pattern{Name: "hexdigit", Source: `[0-9A-Fa-f]`}

	// UnsignedInt matches an unsigned integer (e.g. 2_137).
	UnsignedInt = pattern.Pattern{Name: "unsigned_int", Source: intBase}

	// SignedInt matches an integer with a mandatory sign (e.g. -1).
	SignedInt = pattern.Pattern{Name: "signed_int", Source: `[+\-]` + intBase}

	// Int matches an integer with an optional sign.
	Int = pattern.Pattern{Name: "int", Source: `[+\-]?` + intBase}

	// Decimal matches a decimal value with a dot and digits on at least
	// one side (e.g. 3.14, 3., .92).
	Decimal = pattern.Pattern{Name: "decimal", Source: intBase + `\.(?:` + intBase + `)?|\.` + intBase}

	// UnsignedFloat matches an unsigned floating point value, requiring a
	// dot or an exponent (e.g. 1e3, 1.0, .5).
	UnsignedFloat = pattern.Pattern{Name: "unsigned_float", Source: floatBase}

	// SignedFloat matches a floating point value with a mandatory sign
	// (e.g. +4.3).
	SignedFloat = pattern.Pattern{Name: "signed_float", Source: `[+\-](?:` + floatBase + `)`}

	// Float matches a floating point value with an optional sign.
	Float = pattern.Pattern{Name: "float", Source: `[+\-]?(?:` + floatBase + `)`}

	// UnsignedNumber matches an unsigned integer or float.
	UnsignedNumber = pattern.Pattern{Name: "unsigned_number", Source: floatBase + `|` + intBase}

	// SignedNumber matches an integer or float with a mandatory sign.
	SignedNumber = pattern.Pattern{Name: "signed_number", Source: `[+\-](?:(?:` + floatBase + `)|` + intBase + `)`}

	// Number matches an integer or float with an optional sign.
	Number = pattern.Pattern{Name: "number", Source: `[+\-]?(?:(?:` + floatBase + `)|` + intBase + `)`}
)

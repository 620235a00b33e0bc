package tokenizer

import (
	"fmt"

	"github.com/coregx/tokenizer/pattern"
)

// BadTokenError reports the first character that no literal and no pattern
// matched. Scanning does not advance past it by default; the caller decides
// whether to skip, abort, or report (see Config.ContinueAfterError and
// Config.SuppressUnknown).
type BadTokenError struct {
	// Char is the unmatched character.
	Char rune

	// Position is the character index (not byte index) of Char in the
	// scanned input. With CRLF conversion enabled, positions refer to the
	// normalized input.
	Position int
}

// Error implements the error interface.
func (e *BadTokenError) Error() string {
	return fmt.Sprintf("bad token %q at position %d", e.Char, e.Position)
}

// InvalidPatternError is the configuration-time failure returned when a
// pattern does not compile. It is an alias for pattern.CompileError so
// callers can match it with errors.As against either name.
//
// Example:
//
//	_, err := tokenizer.New(nil, []tokenizer.Pattern{{Name: "bad", Source: `[0-9`}})
//	var perr *tokenizer.InvalidPatternError
//	if errors.As(err, &perr) {
//		fmt.Println(perr.Name) // "bad"
//	}
type InvalidPatternError = pattern.CompileError

package gitattributes

import (
	"errors"
	"fmt"
)

// ErrControlCharacter is the cause of a PatternDecodeError for quoted
// patterns containing raw control characters (U+0000 to U+001F).
var ErrControlCharacter = errors.New("control character in quoted pattern")

// PatternDecodeError is returned by Parse if a quoted pattern has been
// recognized, but cannot be decoded, e.g. because of an illegal escape
// sequence.
type PatternDecodeError struct {
	Line    int    // line number, starting at 1
	Literal string // the quoted pattern as found in the input
	Cause   error
}

func (e *PatternDecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: cannot decode pattern %s: %v", e.Line, e.Literal, e.Cause)
	}
	return fmt.Sprintf("cannot decode pattern %s: %v", e.Literal, e.Cause)
}

func (e *PatternDecodeError) Unwrap() error { return e.Cause }

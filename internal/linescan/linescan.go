/*
Package linescan implements the line level grammar of gitattributes
documents: what counts as a blank, how a pattern is separated from its
attributes, and how quoted patterns are recognized.

Blank characters are the runes with Unicode property White_Space, except for
U+0085 (NEXT LINE), plus U+FEFF (ZERO WIDTH NO-BREAK SPACE).
*/
package linescan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// IsBlank is true for runes separating patterns and attributes.
func IsBlank(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// Trim removes leading and trailing blanks.
func Trim(s string) string {
	return strings.TrimFunc(s, IsBlank)
}

// Fields splits s around runs of blanks. Empty fields are never returned.
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsBlank)
}

// IsComment is true for lines starting with '#'. Leading blanks are
// significant: an indented '#' is not a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsEmpty is true for lines consisting of blanks only.
func IsEmpty(line string) bool {
	return Trim(line) == ""
}

// SplitPattern splits an unquoted line at the first run of blanks.
// The text before the run is the pattern; it is empty if line starts with a
// blank. The text after the run is returned trimmed. If line contains no
// blank at all, the whole line is the pattern and attrs is empty.
func SplitPattern(line string) (pattern, attrs string) {
	start := strings.IndexFunc(line, IsBlank)
	if start < 0 {
		return line, ""
	}
	rest := strings.TrimLeftFunc(line[start:], IsBlank)
	return line[:start], Trim(rest)
}

// SplitQuoted splits a line starting with a quoted literal. The literal is
// returned verbatim, including its quotes. The single character following the
// closing quote is skipped as a separator, whatever it is, and the remaining
// text is returned trimmed. ok is false if the line does not start with a
// complete quoted literal.
func SplitQuoted(line string) (literal, attrs string, ok bool) {
	if literal, ok = MatchQuoted(line); !ok {
		return "", "", false
	}
	rest := line[len(literal):]
	_, size := utf8.DecodeRuneInString(rest)
	return literal, Trim(rest[size:]), true
}

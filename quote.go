package gitattributes

import (
	"strings"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"

	"github.com/npillmayer/gitattributes/internal/linescan"
)

// unquotePattern decodes a quoted pattern literal, quotes included.
func unquotePattern(literal string) (string, error) {
	if strings.IndexFunc(literal, isControl) >= 0 {
		return "", ErrControlCharacter
	}
	lexer := jlexer.Lexer{Data: []byte(literal)}
	pattern := lexer.String()
	lexer.Consumed()
	if err := lexer.Error(); err != nil {
		return "", err
	}
	return pattern, nil
}

// quotePattern encodes a pattern as a quoted literal.
func quotePattern(pattern string) string {
	w := jwriter.Writer{NoEscapeHTML: true}
	w.String(pattern)
	buf, _ := w.BuildBytes()
	return string(buf)
}

// needsQuotes is true for patterns which would not survive being written
// unquoted: empty ones, ones containing blanks, and ones which would be taken
// for a quoted pattern or a comment.
func needsQuotes(pattern string) bool {
	if pattern == "" || pattern[0] == '"' || pattern[0] == '#' {
		return true
	}
	return strings.IndexFunc(pattern, linescan.IsBlank) >= 0
}

func isControl(r rune) bool {
	return r < 0x20
}

package gitattributes

import "strings"

// String renders r as a gitattributes line. Patterns which cannot be written
// verbatim are quoted. For rules returned by Parse, parsing the result yields
// a rule equal to r, with one exception: quoted patterns hold valid UTF-8
// only, so invalid bytes in a pattern which needs quotes are written as
// U+FFFD.
func (r Rule) String() string {
	pattern := r.Pattern
	if needsQuotes(pattern) {
		pattern = quotePattern(pattern)
	}
	if r.Attributes.Len() == 0 {
		return pattern
	}
	return pattern + " " + r.Attributes.String()
}

// Equal compares two rules by pattern and attribute mapping.
func (r Rule) Equal(other Rule) bool {
	return r.Pattern == other.Pattern && r.Attributes.Equal(other.Attributes)
}

// Format renders rules as a gitattributes document, one line per rule.
func Format(rules []Rule) string {
	var sb strings.Builder
	for _, rule := range rules {
		sb.WriteString(rule.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

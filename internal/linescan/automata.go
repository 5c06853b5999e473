package linescan

// stateFn represents a state of the recognizer for quoted pattern literals.
// A stateFn consumes a single rune and returns the state to process the
// next rune with. Returning nil stops the recognizer, either accepting or
// aborting the match (see recognizer.accepted).
type stateFn func(*recognizer, rune) stateFn

// A recognizer matches the longest prefix of a line that forms a
// double-quoted string literal:
//
//	'"' ( [^"\\] | '\\' <any rune but a line terminator> )* '"'
//
// The grammar is the one of JSON string literals, except that no decoding
// happens here. Escape sequences are checked for their
// shape only (a backslash followed by something), not for legality.
type recognizer struct {
	runes    int  // number of runes matched so far
	escapes  int  // number of escape sequences seen
	accepted bool // closing quote has been matched
}

func quoteOpen(rec *recognizer, r rune) stateFn {
	if r != '"' {
		return doAbort(rec)
	}
	rec.runes++
	return quoteBody
}

func quoteBody(rec *recognizer, r rune) stateFn {
	rec.runes++
	switch r {
	case '"':
		return doAccept(rec)
	case '\\':
		return quoteEscape
	}
	return quoteBody
}

func quoteEscape(rec *recognizer, r rune) stateFn {
	if isLineTerminator(r) {
		return doAbort(rec)
	}
	rec.runes++
	rec.escapes++
	return quoteBody
}

// doAbort stops the recognizer without a match.
func doAbort(rec *recognizer) stateFn {
	rec.runes = 0
	rec.accepted = false
	return nil
}

// doAccept stops the recognizer with a match.
func doAccept(rec *recognizer) stateFn {
	rec.accepted = true
	CT().Debugf("quoted literal accepted after %d runes, %d escapes", rec.runes, rec.escapes)
	return nil
}

// MatchQuoted returns the quoted literal at the start of line, including both
// quotes. If line does not start with a complete quoted literal, ok is false.
// The literal is returned verbatim, i.e. escape sequences are still encoded.
func MatchQuoted(line string) (literal string, ok bool) {
	rec := &recognizer{}
	state := stateFn(quoteOpen)
	for i, r := range line {
		if state = state(rec, r); state == nil {
			if rec.accepted {
				return line[:i+1], true // closing quote is a single byte
			}
			return "", false
		}
	}
	CT().Debugf("unterminated quoted literal: %q", line)
	return "", false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

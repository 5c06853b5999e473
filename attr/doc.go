/*
Package attr is about the attribute part of gitattributes lines.

Every line of a gitattributes file pairs a pattern with a list of attributes,
separated by blanks:

   *.png   binary
   *.txt   text eol=lf -diff

This package tokenizes the attribute list into a Set of Values. A Value is
either boolean (the attribute is set or unset) or a text.

Some attributes have been renamed over the history of git. The old names are
still honoured by expanding them to their modern equivalents while parsing,
e.g. "crlf=input" will add "eol=lf". See Normalize.

See https://git-scm.com/docs/gitattributes for the format.
*/
package attr

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

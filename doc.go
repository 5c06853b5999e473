/*
Package gitattributes parses files in the gitattributes format.

Description

From the git documentation:

A gitattributes file is a simple text file that gives attributes to
pathnames. Each line in gitattributes file is of form:

   pattern attr1 attr2 ...

That is, a pattern followed by an attributes list, separated by whitespaces.
Leading and trailing whitespaces are ignored. Lines that begin with # are
ignored. Patterns that begin with a double quote are quoted in C style.

[...]

When more than one pattern matches the path, a later line overrides an
earlier line. This overriding is done per attribute.

Contents

Parse turns the content of a gitattributes file into a list of rules,
one rule for each line which is neither blank nor a comment. Rules are
returned in the order of the input; rules for the same pattern are not merged.
Reading the file, finding the files applying to a path, and matching patterns
against paths is left to clients.

   rules, err := gitattributes.Parse("*.png binary\n*.txt text eol=lf\n")
   for _, rule := range rules {
       fmt.Println(rule.Pattern, rule.Attributes)
   }

The attributes of a rule are parsed by sub-package attr, which also takes
care of expanding legacy attributes ("crlf" and friends).

Quoted patterns are decoded with the escape rules of JSON strings, i.e.
\" \\ \/ \b \f \n \r \t and \uXXXX. Any other escape sequence makes Parse
fail with a *PatternDecodeError. Lines with a quote that is never closed
are silently dropped.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package gitattributes

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

package attr

import (
	"strings"

	"github.com/npillmayer/gitattributes/internal/linescan"
)

// Parse tokenizes the attribute part of a gitattributes line and returns the
// resulting attribute set. Parse never fails: every token is one of
//
//	-key         key is unset (false)
//	key=value    key has a text value, split at the first '='
//	key          key is set (true)
//
// Tokens are processed left to right. Right after a token has been assigned,
// the legacy attributes are expanded (see Normalize), so a later token
// may override an expanded value:
//
//	binary          => binary, -diff
//	binary diff     => binary, diff
func Parse(text string) *Set {
	set := NewSet()
	for _, token := range linescan.Fields(text) {
		if token == "=" {
			continue
		}
		key, value := classify(token)
		set.Put(key, value)
		Normalize(set, key, value)
	}
	CT().Debugf("attributes %q => %s", text, set)
	return set
}

func classify(token string) (string, Value) {
	if strings.HasPrefix(token, "-") {
		return token[1:], Bool(false)
	}
	if i := strings.IndexByte(token, '='); i >= 0 {
		return token[:i], Text(token[i+1:])
	}
	return token, Bool(true)
}

// Normalize applies the backwards compatibility rules of gitattributes for
// an assignment key=value which has just been put into set:
//
//	binary (any truthy value)    => -diff
//	crlf                         => text
//	-crlf                        => -text
//	crlf=input                   => eol=lf
//
// Other assignments leave set untouched.
func Normalize(set *Set, key string, value Value) {
	switch key {
	case "binary":
		if value.Truthy() {
			set.Put("diff", Bool(false))
		}
	case "crlf":
		if b, ok := value.AsBool(); ok {
			set.Put("text", Bool(b))
		} else if value.Is("input") {
			set.Put("eol", Text("lf"))
		}
	}
}

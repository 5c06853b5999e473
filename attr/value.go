package attr

import "strconv"

// Kind discriminates the variants of a Value.
type Kind uint8

// Values are either boolean or text. KindNone flags the zero Value, which is
// never produced by parsing.
const (
	KindNone Kind = iota
	KindBool
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	}
	return "none"
}

// Value is the value of an attribute: either a boolean (set/unset) or a text
// (value assigned with "key=value"). Values are comparable with ==.
type Value struct {
	kind Kind
	text string
	flag bool
}

// Bool creates a boolean attribute value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Text creates a textual attribute value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean of v. ok is false if v is not boolean.
func (v Value) AsBool() (b bool, ok bool) {
	return v.flag, v.kind == KindBool
}

// AsText returns the text of v. ok is false if v is not textual.
func (v Value) AsText() (s string, ok bool) {
	return v.text, v.kind == KindText
}

// Truthy is true for boolean true and for non-empty text.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindText:
		return v.text != ""
	}
	return false
}

// Is checks if v is textual with content s.
func (v Value) Is(s string) bool {
	return v.kind == KindText && v.text == s
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindText:
		return strconv.Quote(v.text)
	}
	return "<none>"
}

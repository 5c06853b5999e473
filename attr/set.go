package attr

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Set maps attribute names to values.
//
// Apart from the mapping, a Set remembers the order in which every key has
// last been written. This order does not take part in equality, but it
// determines the order of tokens in String(): rendering keys in last-write
// order guarantees that re-parsing the rendered text, including the legacy
// expansions, reproduces an equal set.
type Set struct {
	entries *linkedhashmap.Map // string -> Value, in last-write order
}

// NewSet creates an empty attribute set.
func NewSet() *Set {
	return &Set{entries: linkedhashmap.New()}
}

// Put assigns v to key, overwriting an existing value. The key moves to the
// end of the write order.
func (s *Set) Put(key string, v Value) {
	if s.entries == nil {
		s.entries = linkedhashmap.New()
	}
	s.entries.Remove(key)
	s.entries.Put(key, v)
}

// Get returns the value for key, if present.
func (s *Set) Get(key string) (Value, bool) {
	if s == nil || s.entries == nil {
		return Value{}, false
	}
	v, found := s.entries.Get(key)
	if !found {
		return Value{}, false
	}
	return v.(Value), true
}

// Len returns the number of attributes in s.
func (s *Set) Len() int {
	if s == nil || s.entries == nil {
		return 0
	}
	return s.entries.Size()
}

// Keys returns the attribute names in last-write order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, s.Len())
	if s.Len() == 0 {
		return keys
	}
	it := s.entries.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(string))
	}
	return keys
}

// Map returns a copy of the attributes as a plain map.
func (s *Set) Map() map[string]Value {
	m := make(map[string]Value, s.Len())
	if s.Len() == 0 {
		return m
	}
	it := s.entries.Iterator()
	for it.Next() {
		m[it.Key().(string)] = it.Value().(Value)
	}
	return m
}

// Equal compares the mappings of two sets, ignoring write order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		if w, ok := other.Get(key); !ok || v != w {
			return false
		}
	}
	return true
}

// String renders s as gitattributes tokens, separated by single spaces:
// "key" for true, "-key" for false and "key=value" for text.
// Keys appear in last-write order.
func (s *Set) String() string {
	var sb strings.Builder
	for i, key := range s.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v, _ := s.Get(key)
		if b, ok := v.AsBool(); ok {
			if !b {
				sb.WriteByte('-')
			}
			sb.WriteString(key)
			continue
		}
		text, _ := v.AsText()
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(text)
	}
	return sb.String()
}

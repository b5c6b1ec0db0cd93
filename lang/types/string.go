package types

import "strings"

// String is the type of a text string: a sequence of Unicode code points.
// IPPcode23 indexes and replaces strings by code point, not by byte, so
// String carries a few rune-aware helpers in addition to the plain Value
// methods; Go's native string is UTF-8 bytes, so these helpers decode on
// demand rather than keeping a parallel []rune around, since strings in this
// language are typically short.
type String string

var (
	_ Value   = String("")
	_ Ordered = String("")
)

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }

// Cmp implements Ordered, comparing lexicographically over code points (which
// coincides with byte-wise comparison of valid UTF-8). y must be a String.
func (s String) Cmp(y Value) int {
	return strings.Compare(string(s), string(y.(String)))
}

// RuneLen returns the number of Unicode code points in s.
func (s String) RuneLen() int {
	return len([]rune(s))
}

// RuneAt returns the code point at index i (0-based) and true, or (0, false)
// if i is out of range.
func (s String) RuneAt(i int) (rune, bool) {
	rs := []rune(s)
	if i < 0 || i >= len(rs) {
		return 0, false
	}
	return rs[i], true
}

// WithRuneAt returns a copy of s with the code point at index i replaced by
// r, or ("", false) if i is out of range.
func (s String) WithRuneAt(i int, r rune) (String, bool) {
	rs := []rune(s)
	if i < 0 || i >= len(rs) {
		return "", false
	}
	rs[i] = r
	return String(rs), true
}

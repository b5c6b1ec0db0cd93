package types

// NilType is the type of Nil. It is represented as a zero-size value rather
// than a pointer so that Nil is a plain value that compares equal to itself
// by plain ==.
type NilType struct{}

// Nil is the singleton nil value.
var Nil Value = NilType{}

var _ Value = NilType{}

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }

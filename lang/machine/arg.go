package machine

import "ippcode23/lang/types"

// Arg is the tagged union of the four shapes an XML <argN> element can take.
// The loader package parses XML text into concrete Arg values; the machine
// package never re-parses text, it only type-switches on these.
type Arg interface {
	arg()
}

// Var identifies a variable by its frame tag (GF, TF or LF) and name.
type Var struct {
	Frame string
	Name  string
}

func (Var) arg() {}

// Literal is an immediate constant: int, string, bool or nil.
type Literal struct {
	Value types.Value
}

func (Literal) arg() {}

// Label is an opaque jump target name, used by LABEL, JUMP, CALL,
// JUMPIFEQ and JUMPIFNEQ.
type Label struct {
	Name string
}

func (Label) arg() {}

// TypeArg names one of the four value kinds (int, string, bool, nil); it is
// only legal as READ's second operand.
type TypeArg struct {
	Name string
}

func (TypeArg) arg() {}

// Symb is the subset of Arg that denotes a readable value: either a Var
// (read from a frame) or a Literal (used as-is).
type Symb interface {
	Arg
	symb()
}

func (Var) symb()     {}
func (Literal) symb() {}

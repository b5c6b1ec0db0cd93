package machine

import "ippcode23/lang/types"

// Label_ marks a jump target. Its Exec is a no-op during the execution
// pass: all of its work happens in the label pass, driven directly by Run.
// Named with a trailing underscore to avoid colliding with the Label Arg
// type declared in arg.go.
type Label_ struct {
	Name string
}

func (Label_) Opcode() string       { return "LABEL" }
func (*Label_) Exec(*Context) error { return nil }

// Jump is JUMP: unconditional transfer to Target.
type Jump struct {
	Target string
}

func (Jump) Opcode() string { return "JUMP" }

func (i *Jump) Exec(ctx *Context) error {
	return ctx.Jump(i.Target)
}

// Call is CALL: saves the return point then transfers to Target.
type Call struct {
	Target string
}

func (Call) Opcode() string { return "CALL" }

func (i *Call) Exec(ctx *Context) error {
	return ctx.Call(i.Target)
}

// Return is RETURN: transfers back to the instruction after the matching
// CALL.
type Return struct{}

func (Return) Opcode() string { return "RETURN" }

func (i *Return) Exec(ctx *Context) error {
	return ctx.Return()
}

// jumpable reports whether a and b may be compared by JUMPIFEQ/JUMPIFNEQ:
// both must be one of bool, int, string or nil, and — unlike EQ — they must
// share the same type exactly (there is no nil-matches-anything exception
// here).
func jumpable(a, b types.Value) bool {
	switch a.(type) {
	case types.Bool, types.Int, types.String, types.NilType:
	default:
		return false
	}
	return a.Type() == b.Type()
}

func jumpCmp(a, b types.Value) (bool, error) {
	if !jumpable(a, b) {
		return false, newError(CodeOperandType, "JUMPIFEQ/JUMPIFNEQ requires matching bool/int/string/nil operands, got %s and %s", a.Type(), b.Type())
	}
	if _, isNil := a.(types.NilType); isNil {
		return true, nil
	}
	return a.(types.Ordered).Cmp(b) == 0, nil
}

// JumpIfEq is JUMPIFEQ: jumps to Target when Left == Right.
type JumpIfEq struct {
	Target      string
	Left, Right Symb
}

func (JumpIfEq) Opcode() string { return "JUMPIFEQ" }

func (i *JumpIfEq) Exec(ctx *Context) error {
	a, err := ctx.Eval(i.Left)
	if err != nil {
		return err
	}
	b, err := ctx.Eval(i.Right)
	if err != nil {
		return err
	}
	eq, err := jumpCmp(a, b)
	if err != nil {
		return err
	}
	if eq {
		return ctx.Jump(i.Target)
	}
	return nil
}

// JumpIfNeq is JUMPIFNEQ: jumps to Target when Left != Right.
type JumpIfNeq struct {
	Target      string
	Left, Right Symb
}

func (JumpIfNeq) Opcode() string { return "JUMPIFNEQ" }

func (i *JumpIfNeq) Exec(ctx *Context) error {
	a, err := ctx.Eval(i.Left)
	if err != nil {
		return err
	}
	b, err := ctx.Eval(i.Right)
	if err != nil {
		return err
	}
	eq, err := jumpCmp(a, b)
	if err != nil {
		return err
	}
	if !eq {
		return ctx.Jump(i.Target)
	}
	return nil
}

// Exit is EXIT: a successful, user-requested program termination with a
// status code in [0,49].
type Exit struct {
	Status Symb
}

func (Exit) Opcode() string { return "EXIT" }

func (i *Exit) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Status)
	if err != nil {
		return err
	}
	n, ok := v.(types.Int)
	if !ok {
		return newError(CodeOperandType, "EXIT requires an int operand, got %s", v.Type())
	}
	if n < 0 || n > 49 {
		return newError(CodeOperandValue, "EXIT status %d out of range [0,49]", n)
	}
	return &ExitError{Status: int(n)}
}

package machine

import "ippcode23/lang/types"

func evalInts(ctx *Context, a, b Symb) (types.Int, types.Int, error) {
	va, err := ctx.Eval(a)
	if err != nil {
		return 0, 0, err
	}
	vb, err := ctx.Eval(b)
	if err != nil {
		return 0, 0, err
	}
	ia, ok := va.(types.Int)
	if !ok {
		return 0, 0, newError(CodeOperandType, "expected int operand, got %s", va.Type())
	}
	ib, ok := vb.(types.Int)
	if !ok {
		return 0, 0, newError(CodeOperandType, "expected int operand, got %s", vb.Type())
	}
	return ia, ib, nil
}

func evalBools(ctx *Context, a, b Symb) (types.Bool, types.Bool, error) {
	va, err := ctx.Eval(a)
	if err != nil {
		return false, false, err
	}
	vb, err := ctx.Eval(b)
	if err != nil {
		return false, false, err
	}
	ba, ok := va.(types.Bool)
	if !ok {
		return false, false, newError(CodeOperandType, "expected bool operand, got %s", va.Type())
	}
	bb, ok := vb.(types.Bool)
	if !ok {
		return false, false, newError(CodeOperandType, "expected bool operand, got %s", vb.Type())
	}
	return ba, bb, nil
}

// binaryIntOp backs ADD/SUB/MUL/IDIV: both operands int, result int.
type binaryIntOp struct {
	opcode      string
	dst         Var
	left, right Symb
	apply       func(a, b types.Int) (types.Int, error)
}

func (o *binaryIntOp) Opcode() string { return o.opcode }

func (o *binaryIntOp) Exec(ctx *Context) error {
	a, b, err := evalInts(ctx, o.left, o.right)
	if err != nil {
		return err
	}
	r, err := o.apply(a, b)
	if err != nil {
		return err
	}
	return ctx.Write(o.dst, r)
}

func NewAdd(dst Var, a, b Symb) Instruction {
	return &binaryIntOp{opcode: "ADD", dst: dst, left: a, right: b, apply: func(a, b types.Int) (types.Int, error) {
		return a + b, nil
	}}
}

func NewSub(dst Var, a, b Symb) Instruction {
	return &binaryIntOp{opcode: "SUB", dst: dst, left: a, right: b, apply: func(a, b types.Int) (types.Int, error) {
		return a - b, nil
	}}
}

func NewMul(dst Var, a, b Symb) Instruction {
	return &binaryIntOp{opcode: "MUL", dst: dst, left: a, right: b, apply: func(a, b types.Int) (types.Int, error) {
		return a * b, nil
	}}
}

func NewIDiv(dst Var, a, b Symb) Instruction {
	return &binaryIntOp{opcode: "IDIV", dst: dst, left: a, right: b, apply: func(a, b types.Int) (types.Int, error) {
		if b == 0 {
			return 0, newError(CodeOperandValue, "IDIV by zero")
		}
		return a / b, nil
	}}
}

// And is AND: strict boolean conjunction, both operands must already be bool.
type And struct {
	Dst         Var
	Left, Right Symb
}

func (And) Opcode() string { return "AND" }

func (i *And) Exec(ctx *Context) error {
	a, b, err := evalBools(ctx, i.Left, i.Right)
	if err != nil {
		return err
	}
	return ctx.Write(i.Dst, a && b)
}

// Or is OR.
type Or struct {
	Dst         Var
	Left, Right Symb
}

func (Or) Opcode() string { return "OR" }

func (i *Or) Exec(ctx *Context) error {
	a, b, err := evalBools(ctx, i.Left, i.Right)
	if err != nil {
		return err
	}
	return ctx.Write(i.Dst, a || b)
}

// Not is NOT: unary boolean negation.
type Not struct {
	Dst Var
	Src Symb
}

func (Not) Opcode() string { return "NOT" }

func (i *Not) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Src)
	if err != nil {
		return err
	}
	b, ok := v.(types.Bool)
	if !ok {
		return newError(CodeOperandType, "NOT requires a bool operand, got %s", v.Type())
	}
	return ctx.Write(i.Dst, !b)
}

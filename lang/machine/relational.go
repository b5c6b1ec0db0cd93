package machine

import "ippcode23/lang/types"

func orderedPair(a, b types.Value) (types.Ordered, types.Ordered, error) {
	oa, ok := a.(types.Ordered)
	if !ok {
		return nil, nil, newError(CodeOperandType, "expected int/bool/string operand, got %s", a.Type())
	}
	ob, ok := b.(types.Ordered)
	if !ok {
		return nil, nil, newError(CodeOperandType, "expected int/bool/string operand, got %s", b.Type())
	}
	if a.Type() != b.Type() {
		return nil, nil, newError(CodeOperandType, "LT/GT requires matching operand types, got %s and %s", a.Type(), b.Type())
	}
	return oa, ob, nil
}

// Lt is LT: strict less-than over matching int/bool/string operands. A NIL
// operand is always an OPERAND_TYPE error, since NilType implements Value
// but not Ordered.
type Lt struct {
	Dst         Var
	Left, Right Symb
}

func (Lt) Opcode() string { return "LT" }

func (i *Lt) Exec(ctx *Context) error {
	a, err := ctx.Eval(i.Left)
	if err != nil {
		return err
	}
	b, err := ctx.Eval(i.Right)
	if err != nil {
		return err
	}
	oa, ob, err := orderedPair(a, b)
	if err != nil {
		return err
	}
	return ctx.Write(i.Dst, oa.Cmp(ob) < 0)
}

// Gt is GT: strict greater-than, same operand rule as Lt.
type Gt struct {
	Dst         Var
	Left, Right Symb
}

func (Gt) Opcode() string { return "GT" }

func (i *Gt) Exec(ctx *Context) error {
	a, err := ctx.Eval(i.Left)
	if err != nil {
		return err
	}
	b, err := ctx.Eval(i.Right)
	if err != nil {
		return err
	}
	oa, ob, err := orderedPair(a, b)
	if err != nil {
		return err
	}
	return ctx.Write(i.Dst, oa.Cmp(ob) > 0)
}

// Eq is EQ: equality over matching int/bool/string/nil operands, plus the
// special rule that nil is only ever equal to nil.
type Eq struct {
	Dst         Var
	Left, Right Symb
}

func (Eq) Opcode() string { return "EQ" }

func (i *Eq) Exec(ctx *Context) error {
	a, err := ctx.Eval(i.Left)
	if err != nil {
		return err
	}
	b, err := ctx.Eval(i.Right)
	if err != nil {
		return err
	}

	_, aNil := a.(types.NilType)
	_, bNil := b.(types.NilType)
	switch {
	case aNil || bNil:
		return ctx.Write(i.Dst, aNil && bNil)
	case a.Type() != b.Type():
		return newError(CodeOperandType, "EQ requires matching operand types, got %s and %s", a.Type(), b.Type())
	default:
		oa, ok := a.(types.Ordered)
		if !ok {
			return newError(CodeOperandType, "EQ requires int/bool/string/nil operands, got %s", a.Type())
		}
		return ctx.Write(i.Dst, oa.Cmp(b) == 0)
	}
}

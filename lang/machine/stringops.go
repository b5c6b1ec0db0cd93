package machine

import "ippcode23/lang/types"

// Move is MOVE: copy the value of a symbol into a variable.
type Move struct {
	Dst Var
	Src Symb
}

func (Move) Opcode() string { return "MOVE" }

func (i *Move) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Src)
	if err != nil {
		return err
	}
	return ctx.Write(i.Dst, v)
}

// Concat is CONCAT: both operands string, result their concatenation.
type Concat struct {
	Dst         Var
	Left, Right Symb
}

func (Concat) Opcode() string { return "CONCAT" }

func (i *Concat) Exec(ctx *Context) error {
	a, err := ctx.Eval(i.Left)
	if err != nil {
		return err
	}
	b, err := ctx.Eval(i.Right)
	if err != nil {
		return err
	}
	sa, ok := a.(types.String)
	if !ok {
		return newError(CodeOperandType, "CONCAT requires string operands, got %s", a.Type())
	}
	sb, ok := b.(types.String)
	if !ok {
		return newError(CodeOperandType, "CONCAT requires string operands, got %s", b.Type())
	}
	return ctx.Write(i.Dst, sa+sb)
}

// Strlen is STRLEN: the number of code points in a string.
type Strlen struct {
	Dst Var
	Src Symb
}

func (Strlen) Opcode() string { return "STRLEN" }

func (i *Strlen) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Src)
	if err != nil {
		return err
	}
	s, ok := v.(types.String)
	if !ok {
		return newError(CodeOperandType, "STRLEN requires a string operand, got %s", v.Type())
	}
	return ctx.Write(i.Dst, types.Int(s.RuneLen()))
}

// Getchar is GETCHAR: the code point at an index, as a length-1 string.
type Getchar struct {
	Dst        Var
	Str, Index Symb
}

func (Getchar) Opcode() string { return "GETCHAR" }

func (i *Getchar) Exec(ctx *Context) error {
	s, idx, err := evalStringInt(ctx, i.Str, i.Index)
	if err != nil {
		return err
	}
	r, ok := s.RuneAt(int(idx))
	if !ok {
		return newError(CodeBadStringManipulation, "GETCHAR index %d out of range", idx)
	}
	return ctx.Write(i.Dst, types.String(r))
}

// Stri2Int is STRI2INT: the code point at an index, as an int.
type Stri2Int struct {
	Dst        Var
	Str, Index Symb
}

func (Stri2Int) Opcode() string { return "STRI2INT" }

func (i *Stri2Int) Exec(ctx *Context) error {
	s, idx, err := evalStringInt(ctx, i.Str, i.Index)
	if err != nil {
		return err
	}
	r, ok := s.RuneAt(int(idx))
	if !ok {
		return newError(CodeBadStringManipulation, "STRI2INT index %d out of range", idx)
	}
	return ctx.Write(i.Dst, types.Int(r))
}

func evalStringInt(ctx *Context, strArg, idxArg Symb) (types.String, types.Int, error) {
	sv, err := ctx.Eval(strArg)
	if err != nil {
		return "", 0, err
	}
	iv, err := ctx.Eval(idxArg)
	if err != nil {
		return "", 0, err
	}
	s, ok := sv.(types.String)
	if !ok {
		return "", 0, newError(CodeOperandType, "expected string operand, got %s", sv.Type())
	}
	idx, ok := iv.(types.Int)
	if !ok {
		return "", 0, newError(CodeOperandType, "expected int operand, got %s", iv.Type())
	}
	return s, idx, nil
}

// Int2Char is INT2CHAR: the code point as a single-rune string.
type Int2Char struct {
	Dst Var
	Src Symb
}

func (Int2Char) Opcode() string { return "INT2CHAR" }

func (i *Int2Char) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Src)
	if err != nil {
		return err
	}
	n, ok := v.(types.Int)
	if !ok {
		return newError(CodeOperandType, "INT2CHAR requires an int operand, got %s", v.Type())
	}
	r := rune(n)
	if int64(r) != int64(n) || !validRune(r) {
		return newError(CodeBadStringManipulation, "INT2CHAR: %d is not a valid code point", n)
	}
	return ctx.Write(i.Dst, types.String(r))
}

func validRune(r rune) bool {
	if r < 0 || r > 0x10FFFF {
		return false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false // surrogate halves are not valid scalar values
	}
	return true
}

// Setchar is SETCHAR: replace one code point of the target variable's own
// string value in place. The target is read as well as written; see the
// design note on mutable aliasing.
type Setchar struct {
	Dst          Var
	Index, Value Symb
}

func (Setchar) Opcode() string { return "SETCHAR" }

func (i *Setchar) Exec(ctx *Context) error {
	cur, err := ctx.Read(i.Dst)
	if err != nil {
		return err
	}
	target, ok := cur.(types.String)
	if !ok {
		return newError(CodeOperandType, "SETCHAR target must be a string, got %s", cur.Type())
	}

	iv, err := ctx.Eval(i.Index)
	if err != nil {
		return err
	}
	idx, ok := iv.(types.Int)
	if !ok {
		return newError(CodeOperandType, "expected int operand, got %s", iv.Type())
	}

	rv, err := ctx.Eval(i.Value)
	if err != nil {
		return err
	}
	repl, ok := rv.(types.String)
	if !ok {
		return newError(CodeOperandType, "expected string operand, got %s", rv.Type())
	}
	if repl.RuneLen() == 0 {
		return newError(CodeBadStringManipulation, "SETCHAR: empty replacement string")
	}
	r, _ := repl.RuneAt(0)

	out, ok := target.WithRuneAt(int(idx), r)
	if !ok {
		return newError(CodeBadStringManipulation, "SETCHAR index %d out of range", idx)
	}
	return ctx.Write(i.Dst, out)
}

// Type is TYPE: the runtime type name of a symbol, or "" when it names a
// declared-but-uninitialized variable. Unlike every other read, this never
// raises UninitializedVar.
type Type struct {
	Dst Var
	Src Symb
}

func (Type) Opcode() string { return "TYPE" }

func (i *Type) Exec(ctx *Context) error {
	name, err := ctx.PeekType(i.Src)
	if err != nil {
		return err
	}
	return ctx.Write(i.Dst, types.String(name))
}

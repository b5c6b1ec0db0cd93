package machine

// Build constructs the Instruction for one decoded (opcode, args) record.
// It is the single place that knows each opcode's expected argument count
// and kinds; a mismatch there is a BAD_XML condition, not a panic, since the
// loader calls this directly while decoding untrusted input.
//
// This table is kept in the machine package, next to the Instruction types
// it builds, rather than in the loader: the per-opcode arity/kind rule is
// part of each instruction's contract.
func Build(opcode string, args []Arg) (Instruction, error) {
	b, ok := builders[opcode]
	if !ok {
		return nil, newError(CodeBadXML, "unknown opcode %q", opcode)
	}
	return b(args)
}

var builders map[string]func([]Arg) (Instruction, error)

func init() {
	builders = map[string]func([]Arg) (Instruction, error){
		"MOVE":        build2(func(v Var, s Symb) Instruction { return &Move{Dst: v, Src: s} }),
		"CREATEFRAME": build0(func() Instruction { return &CreateFrame{} }),
		"PUSHFRAME":   build0(func() Instruction { return &PushFrame{} }),
		"POPFRAME":    build0(func() Instruction { return &PopFrame{} }),
		"DEFVAR":      build1v(func(v Var) Instruction { return &Defvar{Var: v} }),
		"CALL":        build1l(func(l string) Instruction { return &Call{Target: l} }),
		"RETURN":      build0(func() Instruction { return &Return{} }),
		"PUSHS":       build1s(func(s Symb) Instruction { return &Pushs{Src: s} }),
		"POPS":        build1v(func(v Var) Instruction { return &Pops{Dst: v} }),

		"ADD":  build3(func(v Var, a, b Symb) Instruction { return NewAdd(v, a, b) }),
		"SUB":  build3(func(v Var, a, b Symb) Instruction { return NewSub(v, a, b) }),
		"MUL":  build3(func(v Var, a, b Symb) Instruction { return NewMul(v, a, b) }),
		"IDIV": build3(func(v Var, a, b Symb) Instruction { return NewIDiv(v, a, b) }),
		"LT":   build3(func(v Var, a, b Symb) Instruction { return &Lt{Dst: v, Left: a, Right: b} }),
		"GT":   build3(func(v Var, a, b Symb) Instruction { return &Gt{Dst: v, Left: a, Right: b} }),
		"EQ":   build3(func(v Var, a, b Symb) Instruction { return &Eq{Dst: v, Left: a, Right: b} }),
		"AND":  build3(func(v Var, a, b Symb) Instruction { return &And{Dst: v, Left: a, Right: b} }),
		"OR":   build3(func(v Var, a, b Symb) Instruction { return &Or{Dst: v, Left: a, Right: b} }),
		"NOT":  build2(func(v Var, s Symb) Instruction { return &Not{Dst: v, Src: s} }),

		"INT2CHAR": build2(func(v Var, s Symb) Instruction { return &Int2Char{Dst: v, Src: s} }),
		"STRI2INT": build3(func(v Var, a, b Symb) Instruction { return &Stri2Int{Dst: v, Str: a, Index: b} }),
		"CONCAT":   build3(func(v Var, a, b Symb) Instruction { return &Concat{Dst: v, Left: a, Right: b} }),
		"STRLEN":   build2(func(v Var, s Symb) Instruction { return &Strlen{Dst: v, Src: s} }),
		"GETCHAR":  build3(func(v Var, a, b Symb) Instruction { return &Getchar{Dst: v, Str: a, Index: b} }),
		"SETCHAR":  build3(func(v Var, a, b Symb) Instruction { return &Setchar{Dst: v, Index: a, Value: b} }),
		"TYPE":     build2(func(v Var, s Symb) Instruction { return &Type{Dst: v, Src: s} }),

		"LABEL":     build1l(func(l string) Instruction { return &Label_{Name: l} }),
		"JUMP":      build1l(func(l string) Instruction { return &Jump{Target: l} }),
		"JUMPIFEQ":  buildJumpIf(func(l string, a, b Symb) Instruction { return &JumpIfEq{Target: l, Left: a, Right: b} }),
		"JUMPIFNEQ": buildJumpIf(func(l string, a, b Symb) Instruction { return &JumpIfNeq{Target: l, Left: a, Right: b} }),
		"EXIT":      build1s(func(s Symb) Instruction { return &Exit{Status: s} }),

		"WRITE":  build1s(func(s Symb) Instruction { return &Write{Src: s} }),
		"DPRINT": build1s(func(s Symb) Instruction { return &Dprint{Src: s} }),
		"READ":   buildRead,
	}
}

func asVar(a Arg) (Var, bool)         { v, ok := a.(Var); return v, ok }
func asSymb(a Arg) (Symb, bool)       { s, ok := a.(Symb); return s, ok }
func asLabelName(a Arg) (string, bool) {
	l, ok := a.(Label)
	if !ok {
		return "", false
	}
	return l.Name, true
}
func asTypeName(a Arg) (string, bool) {
	t, ok := a.(TypeArg)
	if !ok {
		return "", false
	}
	return t.Name, true
}

func build0(ctor func() Instruction) func([]Arg) (Instruction, error) {
	return func(args []Arg) (Instruction, error) {
		if len(args) != 0 {
			return nil, newError(CodeBadXML, "expected 0 arguments, got %d", len(args))
		}
		return ctor(), nil
	}
}

func build1v(ctor func(Var) Instruction) func([]Arg) (Instruction, error) {
	return func(args []Arg) (Instruction, error) {
		if len(args) != 1 {
			return nil, newError(CodeBadXML, "expected 1 argument, got %d", len(args))
		}
		v, ok := asVar(args[0])
		if !ok {
			return nil, newError(CodeBadXML, "expected a variable argument")
		}
		return ctor(v), nil
	}
}

func build1s(ctor func(Symb) Instruction) func([]Arg) (Instruction, error) {
	return func(args []Arg) (Instruction, error) {
		if len(args) != 1 {
			return nil, newError(CodeBadXML, "expected 1 argument, got %d", len(args))
		}
		s, ok := asSymb(args[0])
		if !ok {
			return nil, newError(CodeBadXML, "expected a symbol argument")
		}
		return ctor(s), nil
	}
}

func build1l(ctor func(string) Instruction) func([]Arg) (Instruction, error) {
	return func(args []Arg) (Instruction, error) {
		if len(args) != 1 {
			return nil, newError(CodeBadXML, "expected 1 argument, got %d", len(args))
		}
		l, ok := asLabelName(args[0])
		if !ok {
			return nil, newError(CodeBadXML, "expected a label argument")
		}
		return ctor(l), nil
	}
}

func build2(ctor func(Var, Symb) Instruction) func([]Arg) (Instruction, error) {
	return func(args []Arg) (Instruction, error) {
		if len(args) != 2 {
			return nil, newError(CodeBadXML, "expected 2 arguments, got %d", len(args))
		}
		v, ok := asVar(args[0])
		if !ok {
			return nil, newError(CodeBadXML, "expected a variable as argument 1")
		}
		s, ok := asSymb(args[1])
		if !ok {
			return nil, newError(CodeBadXML, "expected a symbol as argument 2")
		}
		return ctor(v, s), nil
	}
}

func build3(ctor func(Var, Symb, Symb) Instruction) func([]Arg) (Instruction, error) {
	return func(args []Arg) (Instruction, error) {
		if len(args) != 3 {
			return nil, newError(CodeBadXML, "expected 3 arguments, got %d", len(args))
		}
		v, ok := asVar(args[0])
		if !ok {
			return nil, newError(CodeBadXML, "expected a variable as argument 1")
		}
		a, ok := asSymb(args[1])
		if !ok {
			return nil, newError(CodeBadXML, "expected a symbol as argument 2")
		}
		b, ok := asSymb(args[2])
		if !ok {
			return nil, newError(CodeBadXML, "expected a symbol as argument 3")
		}
		return ctor(v, a, b), nil
	}
}

func buildJumpIf(ctor func(string, Symb, Symb) Instruction) func([]Arg) (Instruction, error) {
	return func(args []Arg) (Instruction, error) {
		if len(args) != 3 {
			return nil, newError(CodeBadXML, "expected 3 arguments, got %d", len(args))
		}
		l, ok := asLabelName(args[0])
		if !ok {
			return nil, newError(CodeBadXML, "expected a label as argument 1")
		}
		a, ok := asSymb(args[1])
		if !ok {
			return nil, newError(CodeBadXML, "expected a symbol as argument 2")
		}
		b, ok := asSymb(args[2])
		if !ok {
			return nil, newError(CodeBadXML, "expected a symbol as argument 3")
		}
		return ctor(l, a, b), nil
	}
}

func buildRead(args []Arg) (Instruction, error) {
	if len(args) != 2 {
		return nil, newError(CodeBadXML, "expected 2 arguments, got %d", len(args))
	}
	v, ok := asVar(args[0])
	if !ok {
		return nil, newError(CodeBadXML, "expected a variable as argument 1")
	}
	t, ok := asTypeName(args[1])
	if !ok {
		return nil, newError(CodeBadXML, "expected a type as argument 2")
	}
	return &Read{Dst: v, Type: t}, nil
}

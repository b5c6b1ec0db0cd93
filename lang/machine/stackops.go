package machine

// Pushs is PUSHS: push a value onto the data stack.
type Pushs struct {
	Src Symb
}

func (Pushs) Opcode() string { return "PUSHS" }

func (i *Pushs) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Src)
	if err != nil {
		return err
	}
	ctx.PushStack(v)
	return nil
}

// Pops is POPS: pop the data stack into a variable.
type Pops struct {
	Dst Var
}

func (Pops) Opcode() string { return "POPS" }

func (i *Pops) Exec(ctx *Context) error {
	v, err := ctx.PopStack()
	if err != nil {
		return err
	}
	return ctx.Write(i.Dst, v)
}

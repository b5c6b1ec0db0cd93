package machine

// CreateFrame is CREATEFRAME.
type CreateFrame struct{}

func (CreateFrame) Opcode() string { return "CREATEFRAME" }

func (*CreateFrame) Exec(ctx *Context) error {
	ctx.CreateFrame()
	return nil
}

// PushFrame is PUSHFRAME.
type PushFrame struct{}

func (PushFrame) Opcode() string { return "PUSHFRAME" }

func (*PushFrame) Exec(ctx *Context) error {
	return ctx.PushFrame()
}

// PopFrame is POPFRAME.
type PopFrame struct{}

func (PopFrame) Opcode() string { return "POPFRAME" }

func (*PopFrame) Exec(ctx *Context) error {
	return ctx.PopFrame()
}

// Defvar is DEFVAR.
type Defvar struct {
	Var Var
}

func (Defvar) Opcode() string { return "DEFVAR" }

func (i *Defvar) Exec(ctx *Context) error {
	return ctx.Declare(i.Var)
}

package machine

// Run executes ctx.Program to completion. It performs the label pass first
// (visiting every instruction once just to populate the label table, so
// that a forward JUMP/CALL can resolve a label declared later in the
// program), then the execution pass.
//
// In the execution pass, PC always advances by exactly one instruction after
// Exec returns, with no special-casing: LABEL's Exec is a no-op, and
// JUMP/CALL/RETURN/JUMPIFEQ/JUMPIFNEQ set ctx.PC to the target instruction's
// own index, relying on this same post-increment to land one past it. A
// RETURN therefore resumes at the instruction right after the CALL that
// produced the saved PC, and a JUMP to a LABEL resumes right after that
// LABEL, with no extra bookkeeping anywhere.
//
// Run returns *ExitError for a successful EXIT, *Error for any failure, and
// nil if the program runs off the end of the instruction vector.
func Run(ctx *Context) error {
	for ctx.PC = 0; ctx.PC < len(ctx.Program); ctx.PC++ {
		if lbl, ok := ctx.Program[ctx.PC].(*Label_); ok {
			if err := ctx.DeclareLabel(lbl.Name); err != nil {
				return err
			}
		}
	}

	for ctx.PC = 0; ctx.PC < len(ctx.Program); ctx.PC++ {
		if err := ctx.Program[ctx.PC].Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

package machine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ippcode23/lang/machine"
	"ippcode23/lang/types"
)

func newTestContext(program machine.Program) *machine.Context {
	return machine.NewContext(program, strings.NewReader(""), new(strings.Builder), new(strings.Builder))
}

func declareAndRun(t *testing.T, ctx *machine.Context, v machine.Var, program machine.Program) {
	t.Helper()
	require.NoError(t, ctx.Declare(v))
	ctx.Program = program
	require.NoError(t, machine.Run(ctx))
}

func gf(name string) machine.Var           { return machine.Var{Frame: "GF", Name: name} }
func lit(v types.Value) machine.Literal    { return machine.Literal{Value: v} }

func TestArithOps(t *testing.T) {
	cases := []struct {
		name   string
		instr  func(dst machine.Var, a, b machine.Symb) machine.Instruction
		a, b   types.Value
		want   types.Value
	}{
		{"add", machine.NewAdd, types.Int(7), types.Int(5), types.Int(12)},
		{"sub", machine.NewSub, types.Int(7), types.Int(5), types.Int(2)},
		{"mul", machine.NewMul, types.Int(7), types.Int(5), types.Int(35)},
		{"idiv-truncates-toward-zero", machine.NewIDiv, types.Int(-7), types.Int(2), types.Int(-3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := newTestContext(nil)
			dst := gf("r")
			declareAndRun(t, ctx, dst, machine.Program{c.instr(dst, lit(c.a), lit(c.b))})
			got, err := ctx.Read(dst)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestIDivByZero(t *testing.T) {
	ctx := newTestContext(nil)
	dst := gf("r")
	require.NoError(t, ctx.Declare(dst))
	ctx.Program = machine.Program{machine.NewIDiv(dst, lit(types.Int(1)), lit(types.Int(0)))}

	err := machine.Run(ctx)
	var merr *machine.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, machine.CodeOperandValue, merr.Code)
}

func TestBooleanOpsAreStrict(t *testing.T) {
	ctx := newTestContext(nil)
	dst := gf("r")
	require.NoError(t, ctx.Declare(dst))
	ctx.Program = machine.Program{&machine.And{Dst: dst, Left: lit(types.Int(1)), Right: lit(types.True)}}

	err := machine.Run(ctx)
	var merr *machine.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, machine.CodeOperandType, merr.Code)
}

func TestNot(t *testing.T) {
	ctx := newTestContext(nil)
	dst := gf("r")
	require.NoError(t, ctx.Declare(dst))
	ctx.Program = machine.Program{&machine.Not{Dst: dst, Src: lit(types.True)}}
	require.NoError(t, machine.Run(ctx))

	got, err := ctx.Read(dst)
	require.NoError(t, err)
	require.Equal(t, types.False, got)
}

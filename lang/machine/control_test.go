package machine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ippcode23/lang/machine"
	"ippcode23/lang/types"
)

// TestJumpCorrectness is the label/jump law from the specification: after a
// JUMP, the next instruction executed is the one right after LABEL L.
func TestJumpCorrectness(t *testing.T) {
	ctx := newTestContext(nil)
	order := gf("order")
	require.NoError(t, ctx.Declare(order))

	ctx.Program = machine.Program{
		&machine.Jump{Target: "L"},
		&machine.Move{Dst: order, Src: lit(types.String("skipped"))}, // index 1, must be skipped
		&machine.Label_{Name: "L"},                                   // index 2
		&machine.Move{Dst: order, Src: lit(types.String("landed"))},  // index 3, must execute
	}
	require.NoError(t, machine.Run(ctx))

	got, err := ctx.Read(order)
	require.NoError(t, err)
	require.Equal(t, types.String("landed"), got)
}

func TestCallReturn(t *testing.T) {
	ctx := newTestContext(nil)
	trace := gf("trace")
	require.NoError(t, ctx.Declare(trace))

	ctx.Program = machine.Program{
		&machine.Call{Target: "FN"},                                // 0
		&machine.Move{Dst: trace, Src: lit(types.String("back"))},  // 1: landed after CALL
		&machine.Jump{Target: "END"},                               // 2
		&machine.Label_{Name: "FN"},                                // 3
		&machine.Return{},                                          // 4
		&machine.Label_{Name: "END"},                               // 5
	}
	require.NoError(t, machine.Run(ctx))

	got, err := ctx.Read(trace)
	require.NoError(t, err)
	require.Equal(t, types.String("back"), got)
}

func TestReturnWithEmptySlot(t *testing.T) {
	ctx := newTestContext(nil)
	ctx.Program = machine.Program{&machine.Return{}}

	err := machine.Run(ctx)
	var merr *machine.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, machine.CodeUninitializedVar, merr.Code)
}

func TestUndefinedLabelIsSemantic(t *testing.T) {
	ctx := newTestContext(nil)
	ctx.Program = machine.Program{&machine.Jump{Target: "NOPE"}}

	err := machine.Run(ctx)
	var merr *machine.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, machine.CodeSemantic, merr.Code)
}

func TestDuplicateLabelIsSemantic(t *testing.T) {
	ctx := newTestContext(nil)
	ctx.Program = machine.Program{
		&machine.Label_{Name: "L"},
		&machine.Label_{Name: "L"},
	}

	err := machine.Run(ctx)
	var merr *machine.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, machine.CodeSemantic, merr.Code)
}

// TestJumpifneqLoop mirrors the specification's looping scenario: count to
// 3 with ADD/JUMPIFNEQ.
func TestJumpifneqLoop(t *testing.T) {
	ctx := newTestContext(nil)
	i := gf("i")
	require.NoError(t, ctx.Declare(i))
	require.NoError(t, ctx.Write(i, types.Int(0)))

	ctx.Program = machine.Program{
		&machine.Label_{Name: "L"},
		machine.NewAdd(i, i, lit(types.Int(1))),
		&machine.JumpIfNeq{Target: "L", Left: i, Right: lit(types.Int(3))},
	}
	require.NoError(t, machine.Run(ctx))

	got, err := ctx.Read(i)
	require.NoError(t, err)
	require.Equal(t, types.Int(3), got)
}

func TestExitRange(t *testing.T) {
	cases := []struct {
		status  types.Int
		wantErr bool
	}{
		{49, false},
		{50, true},
	}
	for _, c := range cases {
		ctx := newTestContext(nil)
		ctx.Program = machine.Program{&machine.Exit{Status: lit(c.status)}}
		err := machine.Run(ctx)

		var exitErr *machine.ExitError
		var merr *machine.Error
		switch {
		case errors.As(err, &exitErr):
			require.False(t, c.wantErr)
			require.Equal(t, int(c.status), exitErr.Status)
		case errors.As(err, &merr):
			require.True(t, c.wantErr)
			require.Equal(t, machine.CodeOperandValue, merr.Code)
		default:
			t.Fatalf("unexpected result for status %d: %v", c.status, err)
		}
	}
}

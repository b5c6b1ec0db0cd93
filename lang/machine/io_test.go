package machine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ippcode23/lang/machine"
	"ippcode23/lang/types"
)

func TestWriteEscapeDecoding(t *testing.T) {
	var out, errs strings.Builder
	ctx := machine.NewContext(nil, strings.NewReader(""), &out, &errs)
	ctx.Program = machine.Program{&machine.Write{Src: lit(types.String(`A\092B`))}}
	require.NoError(t, machine.Run(ctx))
	require.Equal(t, `A\B`, out.String())
}

func TestWriteNilIsEmptyNotTheWordNil(t *testing.T) {
	var out, errs strings.Builder
	ctx := machine.NewContext(nil, strings.NewReader(""), &out, &errs)
	ctx.Program = machine.Program{&machine.Write{Src: lit(types.Nil)}}
	require.NoError(t, machine.Run(ctx))
	require.Equal(t, "", out.String())
}

func TestDprintUsesRawRepresentation(t *testing.T) {
	var out, errs strings.Builder
	ctx := machine.NewContext(nil, strings.NewReader(""), &out, &errs)
	ctx.Program = machine.Program{&machine.Dprint{Src: lit(types.Nil)}}
	require.NoError(t, machine.Run(ctx))
	require.Equal(t, "nil", errs.String())
}

func TestReadTypeConversions(t *testing.T) {
	cases := []struct {
		name  string
		input string
		typ   string
		want  types.Value
	}{
		{"int ok", "42\n", "int", types.Int(42)},
		{"int bad becomes nil", "abc\n", "int", types.Nil},
		{"bool true", "TRUE\n", "bool", types.True},
		{"bool anything else", "nope\n", "bool", types.False},
		{"string as-is", "hi\n", "string", types.String("hi")},
		{"empty string stays empty", "", "string", types.String("")},
		{"empty int becomes nil", "", "int", types.Nil},
		{"empty bool becomes false", "", "bool", types.False},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out, errs strings.Builder
			ctx := machine.NewContext(nil, strings.NewReader(c.input), &out, &errs)
			dst := gf("r")
			require.NoError(t, ctx.Declare(dst))
			ctx.Program = machine.Program{&machine.Read{Dst: dst, Type: c.typ}}
			require.NoError(t, machine.Run(ctx))

			got, err := ctx.Read(dst)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

package maincmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRequiresSourceOrInput(t *testing.T) {
	c := &Cmd{}
	require.Error(t, c.Validate())

	c = &Cmd{Source: "x.xml"}
	require.NoError(t, c.Validate())

	c = &Cmd{Input: "x.in"}
	require.NoError(t, c.Validate())

	c = &Cmd{Help: true}
	require.NoError(t, c.Validate())
}

func TestRunReportsExitStatus(t *testing.T) {
	const doc = `<program>
		<instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@r</arg1></instruction>
		<instruction order="2" opcode="MOVE"><arg1 type="var">GF@r</arg1><arg2 type="string">hi</arg2></instruction>
		<instruction order="3" opcode="WRITE"><arg1 type="var">GF@r</arg1></instruction>
	</program>`

	var out, errs bytes.Buffer
	code := run(strings.NewReader(doc), strings.NewReader(""), &out, &errs)

	require.Equal(t, exitOK, code)
	require.Equal(t, "hi", out.String())
	require.Empty(t, errs.String())
}

func TestRunReportsLoadError(t *testing.T) {
	var out, errs bytes.Buffer
	code := run(strings.NewReader(`<program><instruction`), strings.NewReader(""), &out, &errs)

	require.Equal(t, 31, code) // CodeFormatXML
	require.NotEmpty(t, errs.String())
}

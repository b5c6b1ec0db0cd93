// Package maincmd wires the command line to the interpreter: flag parsing,
// opening the source/input streams, and mapping machine/loader errors to
// process exit codes.
package maincmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"

	"ippcode23/lang/loader"
	"ippcode23/lang/machine"
)

const binName = "ippcode23"

var (
	shortUsage = fmt.Sprintf(`
usage: %s --source=FILE | --input=FILE [--source=FILE] [--input=FILE]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s --source=FILE --input=FILE
       %[1]s -h|--help

Interpreter for IPPcode23 XML representation programs.

At least one of --source and --input must be given; the other defaults
to standard input. Reading both from standard input is not supported.

Valid flag options are:
       --source=FILE             XML program source (default: stdin).
       --input=FILE              Program input stream (default: stdin).
       -h --help                 Show this help and exit.
`, binName)
)

// Exit codes handled purely at the CLI layer, outside the machine/loader
// taxonomy.
const (
	exitOK       = 0
	exitCmdArgs  = 10
	exitOpenFile = 11
)

// Cmd is the ippcode23 command: parse flags, run one program, report its
// exit status.
type Cmd struct {
	Source string `flag:"source"`
	Input  string `flag:"input"`
	Help   bool   `flag:"h,help"`

	args []string
}

func (c *Cmd) SetArgs(args []string)    { c.args = args }
func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help {
		return nil
	}
	if c.Source == "" && c.Input == "" {
		return errors.New("at least one of --source or --input must be provided")
	}
	return nil
}

// Main parses args, runs the interpreter and returns the process exit code
// to use. It does not call os.Exit itself so that it stays testable.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) int {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return exitCmdArgs
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return exitOK
	}

	src, closeSrc, err := openOrStdin(c.Source, stdio.Stdin)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "ippcode23: cannot open source: %s\n", err)
		return exitOpenFile
	}
	defer closeSrc()

	in, closeIn, err := openOrStdin(c.Input, stdio.Stdin)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "ippcode23: cannot open input: %s\n", err)
		return exitOpenFile
	}
	defer closeIn()

	return run(src, in, stdio.Stdout, stdio.Stderr)
}

// run loads and executes one program, returning the process exit code.
func run(src, in io.Reader, stdout, stderr io.Writer) int {
	program, err := loader.Load(src)
	if err != nil {
		return reportErr(stderr, err)
	}

	ctx := machine.NewContext(program, in, stdout, stderr)
	if err := machine.Run(ctx); err != nil {
		return reportErr(stderr, err)
	}
	return exitOK
}

func reportErr(stderr io.Writer, err error) int {
	var exitErr *machine.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Status
	}
	var merr *machine.Error
	if errors.As(err, &merr) {
		fmt.Fprintf(stderr, "ippcode23: %s\n", merr)
		return int(merr.Code)
	}
	fmt.Fprintf(stderr, "ippcode23: %s\n", err)
	return exitOpenFile
}

// openOrStdin opens path, or returns stdin (with a no-op close) when path is
// empty.
func openOrStdin(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

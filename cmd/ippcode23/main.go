// Command ippcode23 interprets IPPcode23 XML representation programs.
package main

import (
	"os"

	"github.com/mna/mainer"

	"ippcode23/internal/maincmd"
)

func main() {
	c := maincmd.Cmd{}
	os.Exit(c.Main(os.Args, mainer.CurrentStdio()))
}

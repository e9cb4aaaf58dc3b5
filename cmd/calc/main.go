// Command calc is a multi-mode calculator for the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/calc/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
	}
	os.Exit(cli.GetExitCode(err))
}

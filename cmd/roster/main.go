// Command roster is an interactive, in-memory student roster manager.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/roster/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/castsched/castsched/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		code := cli.GetExitCode(err)
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			// Flag and argument errors never reach a command's formatter,
			// so they are reported here and count as command errors.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = cli.ExitCommandError
		}
		os.Exit(code)
	}
}

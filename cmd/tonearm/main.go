package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := execute(cmd, args); err != nil {
		fmt.Fprintln(stderr, renderErrorLine(err, shouldColorize(stderr)))
		return 1
	}
	return 0
}

func execute(cmd *cobra.Command, args []string) error {
	normalized, err := normalizeArgs(cmd, args)
	if err != nil {
		return err
	}
	cmd.SetArgs(normalized)
	return cmd.Execute()
}

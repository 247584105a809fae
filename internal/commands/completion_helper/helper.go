package completion_helper

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints the visible subcommands and every flag of the
// current command, one per line, for shell completion scripts.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	w := writerOf(cmd)
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		_, _ = fmt.Fprintln(w, sub.Name)
	}
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(w, "-"+name)
			} else {
				_, _ = fmt.Fprintln(w, "--"+name)
			}
		}
	}
}

func writerOf(cmd *cli.Command) io.Writer {
	if cmd.Writer != nil {
		return cmd.Writer
	}
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

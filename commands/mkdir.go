package commands

import (
	"fmt"
	"os"

	"shbox/core/host"
)

// Mkdir implements a POSIX mkdir command.
func Mkdir(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [OPTION...] DIRECTORY...",
		Short: "Create directories if they don't exist.",
	}

	makeParents := cmd.Flags().BoolLong("parents", 'p', "make parents if needed")
	verbose := cmd.Flags().BoolLong("verbose", 'v', "print line for every created directory")

	return cmd.Run(p, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			fmt.Fprintln(p.Stderr(), "mkdir: missing operand")
			return 1
		}

		var op func(path string, perm os.FileMode) error
		if *makeParents {
			op = p.MkdirAll
		} else {
			op = p.Mkdir
		}

		anyFailed := false
		for _, dir := range directories {
			err := op(dir, 0777)
			switch {
			case err != nil:
				fmt.Fprintf(p.Stderr(), "mkdir: cannot create directory %q: %s\n", dir, err)
				anyFailed = true

			case *verbose:
				fmt.Fprintf(p.Stdout(), "mkdir: created directory: %s\n", dir)
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ host.ProcessFunc = Mkdir

func init() {
	addCmd("mkdir", "Create directories.", Mkdir)
}

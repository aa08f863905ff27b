package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"shbox/core/host"
)

// Touch implements a POSIX touch command.
func Touch(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "touch [OPTION...] FILE...",
		Short: "Update the access and modification times of files to now.",
	}

	noCreate := cmd.Flags().BoolLong("no-create", 'c', "don't create files")

	return cmd.Run(p, func() int {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			fmt.Fprintln(p.Stderr(), "touch: missing file operand")
			return 1
		}

		now := time.Now()

		var anyFailed bool
		for _, path := range paths {
			err := p.Chtimes(path, now, now)
			switch {
			case errors.Is(err, fs.ErrNotExist) && !*noCreate:
				fd, err := p.Create(path)
				if err != nil {
					fmt.Fprintf(p.Stderr(), "touch: cannot touch %q: %s\n", path, err)
					anyFailed = true
					continue
				}
				fd.Close()
			case errors.Is(err, fs.ErrNotExist) && *noCreate:
				// Not an error.
			case err != nil:
				fmt.Fprintf(p.Stderr(), "touch: setting times of %q: %s\n", path, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ host.ProcessFunc = Touch

func init() {
	addCmd("touch", "Create empty files or update timestamps.", Touch)
}

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"shbox/core/host"
)

// Mv implements a POSIX mv command. With multiple sources the destination
// must be an existing directory.
func Mv(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "mv [OPTION...] SOURCE... DEST",
		Short: "Move (rename) files.",
	}

	noClobber := cmd.Flags().BoolLong("no-clobber", 'n', "do not overwrite an existing file")
	verbose := cmd.Flags().BoolLong("verbose", 'v', "explain what is being done")

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			fmt.Fprintln(p.Stderr(), "mv: missing destination file operand")
			return 1
		}

		sources, dest := args[:len(args)-1], args[len(args)-1]

		destIsDir := false
		if stat, err := p.Stat(dest); err == nil && stat.IsDir() {
			destIsDir = true
		}

		if len(sources) > 1 && !destIsDir {
			fmt.Fprintf(p.Stderr(), "mv: target %q is not a directory\n", dest)
			return 1
		}

		anyFailed := false
		for _, source := range sources {
			target := dest
			if destIsDir {
				target = path.Join(dest, path.Base(source))
			}

			if _, err := p.Stat(source); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(p.Stderr(), "mv: cannot stat %q: no such file or directory\n", source)
				anyFailed = true
				continue
			}

			if *noClobber {
				if _, err := p.Stat(target); err == nil {
					continue
				}
			}

			if err := p.Rename(source, target); err != nil {
				fmt.Fprintf(p.Stderr(), "mv: cannot move %q to %q: %v\n", source, target, err)
				anyFailed = true
				continue
			}

			if *verbose {
				fmt.Fprintf(p.Stdout(), "renamed %q -> %q\n", source, target)
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ host.ProcessFunc = Mv

func init() {
	addCmd("mv", "Move or rename files.", Mv)
}

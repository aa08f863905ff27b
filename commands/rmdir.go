package commands

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"shbox/core/host"
)

// Rmdir implements a POSIX rmdir command.
func Rmdir(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "rmdir [OPTION...] DIRECTORY...",
		Short: "Remove empty directories.",
	}

	parents := cmd.Flags().BoolLong("parents", 'p', "remove ancestor directories too")
	verbose := cmd.Flags().BoolLong("verbose", 'v', "print line for every deleted directory")

	return cmd.Run(p, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			fmt.Fprintln(p.Stderr(), "rmdir: missing operand")
			return 1
		}

		anyFailed := false
		for _, dir := range directories {
			var steps []string
			if *parents {
				var built []string
				for _, part := range strings.Split(dir, "/") {
					built = append(built, part)
					steps = append(steps, path.Join(built...))
				}
				// Deepest first.
				sort.Slice(steps, func(i, j int) bool {
					return len(steps[i]) > len(steps[j])
				})
			} else {
				steps = append(steps, dir)
			}

			for _, dir := range steps {
				file, err := p.Open(dir)
				if err != nil {
					fmt.Fprintf(p.Stderr(), "rmdir: cannot read directory %q: %s\n", dir, err)
					anyFailed = true
					break
				}

				contents, err := file.Readdir(-1)
				file.Close()
				if err != nil {
					fmt.Fprintf(p.Stderr(), "rmdir: cannot read directory %q: %s\n", dir, err)
					anyFailed = true
					break
				}

				if len(contents) > 0 {
					fmt.Fprintf(p.Stderr(), "rmdir: directory not empty %q\n", dir)
					anyFailed = true
					break
				}

				err = p.Remove(dir)
				switch {
				case err != nil:
					fmt.Fprintf(p.Stderr(), "rmdir: cannot remove directory %q: %s\n", dir, err)
					anyFailed = true

				case *verbose:
					fmt.Fprintf(p.Stdout(), "rmdir: removed directory: %s\n", dir)
				}
				if err != nil {
					break
				}
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ host.ProcessFunc = Rmdir

func init() {
	addCmd("rmdir", "Remove empty directories.", Rmdir)
}

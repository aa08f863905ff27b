package commands

import (
	"fmt"
	"io"

	"shbox/core/host"
)

// Cat implements the UNIX cat command. With no operands it copies stdin to
// stdout, which is what makes it useful at the end of a pipe.
func Cat(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "cat [FILE]...",
		Short: "Concatenate FILE(s) to standard output.",
	}

	return cmd.Run(p, func() int {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			if _, err := io.Copy(p.Stdout(), p.Stdin()); err != nil {
				fmt.Fprintf(p.Stderr(), "cat: %v\n", err)
				return 1
			}
			return 0
		}

		for _, arg := range files {
			fd, err := p.Open(arg)
			if err != nil {
				fmt.Fprintf(p.Stderr(), "cat: %v\n", err)
				return 1
			}

			_, err = io.Copy(p.Stdout(), fd)
			fd.Close()
			if err != nil {
				fmt.Fprintf(p.Stderr(), "cat: %v\n", err)
				return 1
			}
		}

		return 0
	})
}

var _ host.ProcessFunc = Cat

func init() {
	addCmd("cat", "Concatenate files to standard output.", Cat)
}

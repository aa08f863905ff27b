package commands

import (
	"fmt"

	"shbox/core/host"
)

// Echo implements a limited echo command.
func Echo(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "echo [-n] [ARG] ...",
		Short: "Display a line of text.",
	}

	noNewline := cmd.Flags().Bool('n', "don't output the trailing newline")

	return cmd.Run(p, func() int {
		w := p.Stdout()
		for i, arg := range cmd.Flags().Args() {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, arg)
		}

		if !*noNewline {
			fmt.Fprintln(w)
		}

		return 0
	})
}

var _ host.ProcessFunc = Echo

func init() {
	addCmd("echo", "Display a line of text.", Echo)
}

package commands

import (
	"fmt"

	"shbox/core/host"
)

// Pwd implements the UNIX pwd command.
func Pwd(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(p, func() int {
		fmt.Fprintln(p.Stdout(), p.Getwd())
		return 0
	})
}

var _ host.ProcessFunc = Pwd

func init() {
	addCmd("pwd", "Print the working directory.", Pwd)
}

package commands

import (
	"fmt"
	"text/tabwriter"

	"shbox/core/host"
)

// Help prints the command catalog. It is registered like any other command
// so it can take part in pipelines and redirection.
func Help(p *host.Proc) int {
	cmd := &SimpleCommand{
		Use:   "help",
		Short: "Show the available commands.",
	}

	return cmd.Run(p, func() int {
		w := p.Stdout()
		fmt.Fprintln(w, "These commands are implemented by the shell itself.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")

		tw := tabwriter.NewWriter(w, 2, 8, 2, ' ', 0)
		for _, entry := range List() {
			fmt.Fprintf(tw, "  %s\t%s\n", entry.Name, entry.Short)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", "cd", "Change the working directory.")
		fmt.Fprintf(tw, "  %s\t%s\n", "exit", "Exit the shell.")
		tw.Flush()

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Special syntax:")
		fmt.Fprintln(w, "  CMD | CMD   pipe output to another command")
		fmt.Fprintln(w, "  CMD > FILE  redirect output to a file (overwrite)")
		fmt.Fprintln(w, "  CMD >> FILE redirect output to a file (append)")

		return 0
	})
}

var _ host.ProcessFunc = Help

func init() {
	addCmd("help", "Show the available commands.", Help)
}

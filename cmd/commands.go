package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shbox/commands"
)

// commandsCmd lists the bundled utilities and shell builtins.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the bundled utilities and shell builtins.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', 0)
		defer tw.Flush()

		for _, entry := range commands.List() {
			fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Short)
		}
		fmt.Fprintf(tw, "%s\t%s\n", "cd", "Change the working directory (shell builtin).")
		fmt.Fprintf(tw, "%s\t%s\n", "exit", "Exit the shell (shell builtin).")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"shbox/commands"
	"shbox/core/shell"
)

// shellCmd starts the interactive shell.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		sh, err := shell.New(configuration, commands.Lookup)
		if err != nil {
			return err
		}
		defer sh.Close()

		return sh.Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"shbox/commands"
	"shbox/core/host"
)

// execCmd runs one bundled utility non-interactively against the real
// filesystem, with the process's stdio passed through.
var execCmd = &cobra.Command{
	Use:   "exec CMD [ARG...]",
	Short: "Run one bundled utility directly.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		proc, ok := commands.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%s: command not found", args[0])
		}

		wd, err := os.Getwd()
		if err != nil {
			return err
		}

		p := host.NewProc(args, host.ProcAttr{
			FS:     afero.NewOsFs(),
			Dir:    wd,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		})

		if status := proc(p); status != 0 {
			os.Exit(status)
		}
		return nil
	},
}

func init() {
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shbox/core/config"
)

// initCmd writes a commented default configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml to the config path.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dest := filepath.Join(cfgPath, config.ConfigurationName)
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s already exists", dest)
		}

		if err := os.MkdirAll(cfgPath, 0755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, config.DefaultData(), 0644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

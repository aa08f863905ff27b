// Package cmd holds the shbox command line interface.
package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"shbox/core/config"
)

var cfgPath string

// loadConfig reads the configuration, falling back to the built-in
// defaults when no config.yaml exists.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shbox",
	Short: "A bundle of file utilities and the shell that hosts them.",
	Long: `shbox bundles file-manipulation utilities (echo, cat, ls, pwd, mkdir,
rmdir, touch, mv, rm) with a small interactive shell that runs them
in-process, including piping and output redirection.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}

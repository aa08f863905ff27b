// Package config loads and validates the shell's configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const ConfigurationName = "config.yaml"

type Configuration struct {
	// Prompt template; \w expands to the working directory.
	Prompt string `json:"prompt" validate:"required"`

	// HistoryFile is where the REPL persists line history. Empty
	// disables persistence.
	HistoryFile string `json:"history_file"`

	// Color controls colorized output.
	Color string `json:"color" validate:"oneof=always auto never"`

	// Root, when set, jails the shell to this directory of the host
	// filesystem.
	Root string `json:"root"`

	// Home is the directory the shell starts in and a bare cd returns
	// to, relative to Root when one is set. Empty means the process's
	// working directory, or / when jailed.
	Home string `json:"home"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	// The embedded config is validated by tests; a failure here is a
	// packaging bug.
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// DefaultData returns the commented default config.yaml contents.
func DefaultData() []byte {
	return defaultConfigData
}

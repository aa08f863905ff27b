// Package shell implements the interactive command shell: tokenizing input
// lines, resolving pipelines and redirection, and executing the bundled
// utilities in-process.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"shbox/core/config"
)

// Shell is one interactive session: a readline loop over a persistent
// Session, feeding resolved pipelines to the Engine.
type Shell struct {
	Config   *config.Configuration
	Session  *Session
	Engine   *Engine
	Readline *readline.Instance

	stdout io.Writer
	stderr io.Writer
	done   bool
}

// New builds a shell from the configuration, wired to the process's
// terminal. The resolver supplies the utilities commands are dispatched
// to.
func New(cfg *config.Configuration, resolver Resolver) (*Shell, error) {
	var fs afero.Fs = afero.NewOsFs()
	home := cfg.Home

	if cfg.Root != "" {
		fs = afero.NewBasePathFs(fs, cfg.Root)
		if home == "" {
			home = "/"
		}
	} else if home == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		home = wd
	}

	session := NewSession(fs, home)

	interactive := false
	switch cfg.Color {
	case "always":
		interactive = true
	case "auto":
		interactive = !color.NoColor
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return nil, err
	}

	shell := &Shell{
		Config:   cfg,
		Session:  session,
		Readline: rl,
		// The readline instance is an io.Writer that refreshes the
		// prompt around writes.
		stdout: rl,
		stderr: os.Stderr,
	}
	shell.Engine = &Engine{
		Resolver:    resolver,
		Sink:        &Sink{Terminal: shell.stdout},
		Stderr:      shell.stderr,
		Interactive: interactive,
	}

	return shell, nil
}

// Prompt renders the configured prompt template; \w expands to the
// working directory with the home prefix shortened to ~.
func (s *Shell) Prompt() string {
	prompt := s.Config.Prompt
	if prompt == "" {
		prompt = `\w> `
	}

	pwd := s.Session.Getwd()
	if home := s.Session.Home(); home != "/" {
		if pwd == home || strings.HasPrefix(pwd, home+"/") {
			pwd = "~" + strings.TrimPrefix(pwd, home)
		}
	}

	if s.Engine.Interactive {
		pwd = color.New(color.FgCyan, color.Bold).Sprint(pwd)
	}

	return strings.ReplaceAll(prompt, `\w`, pwd)
}

// Run reads and executes input lines until exit or EOF. Only terminal I/O
// failure is fatal; command errors surface as diagnostics and the loop
// continues.
func (s *Shell) Run() error {
	fmt.Fprintln(s.stdout, "shbox interactive shell")
	fmt.Fprintln(s.stdout, "Type 'help' for available commands, 'exit' to quit.")

	for !s.done {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		s.Eval(line)
	}

	fmt.Fprintln(s.stdout, "Goodbye!")
	return nil
}

// Eval runs a single input line to completion.
func (s *Shell) Eval(line string) {
	tokens, err := Tokenize(line)
	if err != nil {
		fmt.Fprintf(s.stderr, "parse error: %v\n", err)
		return
	}

	pipeline, target, err := Resolve(tokens)
	if err != nil {
		fmt.Fprintf(s.stderr, "parse error: %v\n", err)
		return
	}
	if len(pipeline) == 0 {
		return // Blank line.
	}

	// Shell builtins mutate session or REPL state, so they only run as
	// a standalone command with no redirection.
	if builtin, ok := AllBuiltins[pipeline[0].Name()]; ok && len(pipeline) == 1 && target == nil {
		builtin.Main(s, pipeline[0].Args)
		return
	}
	for _, stage := range pipeline {
		if _, ok := AllBuiltins[stage.Name()]; ok {
			fmt.Fprintf(s.stderr, "%s: can only be used as a standalone command\n", stage.Name())
			return
		}
	}

	s.Engine.Run(pipeline, target, s.Session)
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}

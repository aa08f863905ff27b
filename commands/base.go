// Package commands holds the bundled file utilities the shell hosts as
// builtins.
package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"

	"shbox/core/host"
)

// Command is a registered utility.
type Command struct {
	Name  string
	Short string
	Proc  host.ProcessFunc
}

// registry holds all bundled utilities, keyed by name.
var registry = make(map[string]Command)

// addCmd registers a utility. Called from init() in each command's file.
func addCmd(name, short string, proc host.ProcessFunc) {
	registry[name] = Command{Name: name, Short: short, Proc: proc}
}

// Lookup finds a utility by exact name.
func Lookup(name string) (host.ProcessFunc, bool) {
	cmd, ok := registry[name]
	if !ok {
		return nil, false
	}
	return cmd.Proc, true
}

// List returns all registered utilities sorted by name.
func List() []Command {
	var out []Command
	for _, cmd := range registry {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// SimpleCommand standardizes flag parsing and usage output for utilities.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses flags and, if parsing was successful, calls the callback.
func (s *SimpleCommand) Run(p *host.Proc, callback func() int) int {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(p.Args(), nil); err != nil {
		fmt.Fprintf(p.Stderr(), "error: %s\n\n", err)
		s.PrintHelp(p.Stderr())
		return 1
	}

	if *showHelp {
		s.PrintHelp(p.Stdout())
		return 0
	}

	return callback()
}

var (
	ColorBoldBlue = color.New(color.FgBlue, color.Bold)
	ColorBoldRed  = color.New(color.FgRed, color.Bold)
)

// ColorPrinter colorizes output according to an always/auto/never flag.
type ColorPrinter struct {
	value *string
	proc  *host.Proc
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

// Init sets up the flag and process used to determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set, p *host.Proc) {
	c.proc = p
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		colorAuto,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case *c.value == colorNever:
		return false
	case *c.value == colorAlways:
		return true
	default:
		return c.proc.Interactive
	}
}

func (c *ColorPrinter) Sprintf(color *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		return color.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}

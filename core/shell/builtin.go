package shell

import (
	"fmt"
)

// AllBuiltins holds the shell-level builtins: commands that touch session
// state or the REPL itself and therefore can't run as pipeline stages.
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	Main(s *Shell, args []string) int
}

type BuiltinFunc func(s *Shell, args []string) int

func (f BuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Cd is the cd shell builtin. It is the only writer of the session's
// working directory; the change takes effect on the next input line.
func Cd(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		args = append(args, s.Session.Home())
		fallthrough
	case 2:
		if err := s.Session.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
			return 1
		}
	default:
		fmt.Fprintf(s.stderr, "%s: too many arguments\n", args[0])
		return 1
	}
	return 0
}

// Exit quits the shell.
func Exit(s *Shell, args []string) int {
	s.done = true
	return 0
}

func init() {
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["exit"] = BuiltinFunc(Exit)
}

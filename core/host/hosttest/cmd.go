// Package hosttest runs bundled utilities in-process for testing, in the
// style of os/exec.
package hosttest

import (
	"bytes"
	"io"

	"github.com/spf13/afero"

	"shbox/core/host"
)

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function under test.
	Process host.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// Working directory for the process, "/" if empty.
	Dir string
	// FS is the filesystem the process sees. Defaults to an empty
	// in-memory filesystem.
	FS afero.Fs

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int
}

func Command(process host.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		FS:      afero.NewMemMapFs(),
	}
}

// Run starts the command and waits for it to complete.
func (c *Cmd) Run() error {
	proc := host.NewProc(c.Argv, host.ProcAttr{
		FS:     c.FS,
		Dir:    c.Dir,
		Stdin:  c.Stdin,
		Stdout: c.Stdout,
		Stderr: c.Stderr,
	})

	c.ExitStatus = c.Process(proc)
	return nil
}

// Output runs the command and returns its standard output.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CombinedOutput runs the command and returns its combined standard output
// and standard error.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

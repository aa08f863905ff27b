// Package host provides the process environment the shell hands to each
// bundled utility: arguments, a working directory, a filesystem, and
// standard I/O streams.
package host

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/spf13/afero"
)

// ProcessFunc is the entry point of a bundled utility. The return value is
// the exit status; zero means success.
type ProcessFunc func(p *Proc) int

// Proc is a single utility invocation. The shell builds one per pipeline
// stage; standalone invocations get one wired to the real filesystem and
// process stdio.
type Proc struct {
	fs   afero.Fs
	dir  string
	args []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Interactive reports whether stdout is a terminal, for commands
	// that colorize output.
	Interactive bool
}

// ProcAttr describes how to construct a Proc.
type ProcAttr struct {
	FS          afero.Fs
	Dir         string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool
}

func NewProc(args []string, attr ProcAttr) *Proc {
	p := &Proc{
		fs:          attr.FS,
		dir:         attr.Dir,
		args:        args,
		stdin:       attr.Stdin,
		stdout:      attr.Stdout,
		stderr:      attr.Stderr,
		Interactive: attr.Interactive,
	}

	if p.dir == "" {
		p.dir = "/"
	}
	if p.stdin == nil {
		p.stdin = eofReader{}
	}
	if p.stdout == nil {
		p.stdout = ioutil.Discard
	}
	if p.stderr == nil {
		p.stderr = ioutil.Discard
	}

	return p
}

// Args holds the invocation arguments; Args[0] is the command name.
func (p *Proc) Args() []string {
	return p.args
}

// Getwd returns the working directory the stage was invoked with.
func (p *Proc) Getwd() string {
	return p.dir
}

func (p *Proc) Stdin() io.Reader  { return p.stdin }
func (p *Proc) Stdout() io.Writer { return p.stdout }
func (p *Proc) Stderr() io.Writer { return p.stderr }

// Resolve turns name into an absolute, cleaned path relative to the
// working directory.
func (p *Proc) Resolve(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(p.dir, name)
}

// Filesystem operations, all resolved against the working directory.

func (p *Proc) Open(name string) (afero.File, error) {
	return p.fs.Open(p.Resolve(name))
}

func (p *Proc) Create(name string) (afero.File, error) {
	return p.fs.Create(p.Resolve(name))
}

func (p *Proc) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return p.fs.OpenFile(p.Resolve(name), flag, perm)
}

func (p *Proc) Stat(name string) (os.FileInfo, error) {
	return p.fs.Stat(p.Resolve(name))
}

func (p *Proc) Mkdir(name string, perm os.FileMode) error {
	return p.fs.Mkdir(p.Resolve(name), perm)
}

func (p *Proc) MkdirAll(name string, perm os.FileMode) error {
	return p.fs.MkdirAll(p.Resolve(name), perm)
}

func (p *Proc) Remove(name string) error {
	return p.fs.Remove(p.Resolve(name))
}

func (p *Proc) RemoveAll(name string) error {
	return p.fs.RemoveAll(p.Resolve(name))
}

func (p *Proc) Rename(oldname, newname string) error {
	return p.fs.Rename(p.Resolve(oldname), p.Resolve(newname))
}

func (p *Proc) Chtimes(name string, atime, mtime time.Time) error {
	return p.fs.Chtimes(p.Resolve(name), atime, mtime)
}

// eofReader is stdin for a stage with no upstream output.
type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}

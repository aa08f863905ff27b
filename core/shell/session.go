package shell

import (
	"fmt"
	"path"

	"github.com/spf13/afero"
)

// Session holds the state that outlives a single command line: the
// filesystem and the current working directory. Only the cd builtin
// mutates it.
type Session struct {
	FS afero.Fs

	cwd  string
	home string
}

// NewSession creates a session rooted at home, which must be an absolute
// path within fs.
func NewSession(fs afero.Fs, home string) *Session {
	home = path.Clean("/" + home)
	return &Session{
		FS:   fs,
		cwd:  home,
		home: home,
	}
}

// Getwd returns the current working directory, always absolute and
// normalized.
func (s *Session) Getwd() string {
	return s.cwd
}

// Home returns the directory a bare cd changes to.
func (s *Session) Home() string {
	return s.home
}

// Resolve turns name into an absolute, cleaned path relative to the
// working directory.
func (s *Session) Resolve(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(s.cwd, name)
}

// Chdir changes the working directory. The change is visible from the next
// command line on.
func (s *Session) Chdir(dir string) error {
	target := s.Resolve(dir)

	stat, err := s.FS.Stat(target)
	switch {
	case err != nil:
		return fmt.Errorf("%s: no such file or directory", dir)
	case !stat.IsDir():
		return fmt.Errorf("%s: not a directory", dir)
	}

	s.cwd = target
	return nil
}

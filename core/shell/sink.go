package shell

import (
	"fmt"
	"io"
	"os"
)

// Sink routes a pipeline's final output either to the terminal or to a
// redirection target file.
type Sink struct {
	// Terminal receives output when no redirection target is present.
	Terminal io.Writer
}

// Write sends data to the redirection target, or to the terminal when
// target is nil. Target files are created if absent; Truncate replaces
// their contents and Append extends them.
func (s *Sink) Write(data []byte, target *Redirect, sess *Session) error {
	if target == nil {
		_, err := s.Terminal.Write(data)
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE
	if target.Mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	fd, err := sess.FS.OpenFile(sess.Resolve(target.Path), flags, 0666)
	if err != nil {
		return fmt.Errorf("%s: %w", target.Path, err)
	}

	_, werr := fd.Write(data)
	cerr := fd.Close()
	if werr != nil {
		return fmt.Errorf("%s: %w", target.Path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("%s: %w", target.Path, cerr)
	}

	return nil
}

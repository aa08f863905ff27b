package shell

import (
	"bytes"
	"fmt"
	"io"

	"shbox/core/host"
)

// Resolver maps a command name to its registered utility. A false return
// means the name is unknown.
type Resolver func(name string) (host.ProcessFunc, bool)

// NotFoundError reports a pipeline stage naming an unregistered command.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

// ExitError reports a stage whose utility returned a nonzero status.
type ExitError struct {
	Name   string
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exited with status %d", e.Name, e.Status)
}

// Engine executes resolved pipelines. Stages run strictly left to right,
// each one consuming the previous stage's captured stdout as stdin; there
// is no streaming between stages.
type Engine struct {
	Resolver Resolver
	Sink     *Sink
	// Stderr receives accumulated stage diagnostics and the engine's
	// own error lines.
	Stderr io.Writer
	// Interactive marks stage stdout as a terminal when the pipeline
	// output isn't redirected.
	Interactive bool
}

// Run executes one pipeline against the session.
//
// A stage that can't be dispatched or that fails stops the pipeline;
// downstream stages never run and nothing is written to the sink. On
// success the last stage's output goes to the redirection target, or to
// the terminal when there is none. Stage stderr is accumulated across the
// whole run and always flushed to the engine's error stream.
//
// The returned error is the failure already surfaced as a diagnostic, for
// callers that want to inspect it; Run never terminates the REPL.
func (e *Engine) Run(pipeline Pipeline, target *Redirect, sess *Session) error {
	var carry []byte
	var diags bytes.Buffer

	var runErr error
	// A stage that explains its failure on stderr doesn't get a second
	// engine diagnostic on top.
	surfaced := false

	for _, stage := range pipeline {
		proc, ok := e.Resolver(stage.Name())
		if !ok {
			runErr = &NotFoundError{Name: stage.Name()}
			break
		}

		var stdout, stderr bytes.Buffer
		p := host.NewProc(stage.Args, host.ProcAttr{
			FS:          sess.FS,
			Dir:         sess.Getwd(),
			Stdin:       bytes.NewReader(carry),
			Stdout:      &stdout,
			Stderr:      &stderr,
			Interactive: e.Interactive && target == nil,
		})

		status := proc(p)
		diags.Write(stderr.Bytes())

		if status != 0 {
			runErr = &ExitError{Name: stage.Name(), Status: status}
			surfaced = stderr.Len() > 0
			break
		}

		carry = stdout.Bytes()
	}

	if runErr == nil {
		if err := e.Sink.Write(carry, target, sess); err != nil {
			runErr = err
		}
	}

	if runErr != nil && !surfaced {
		fmt.Fprintln(&diags, runErr)
	}
	if diags.Len() > 0 {
		e.Stderr.Write(diags.Bytes())
	}

	return runErr
}

package shell

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shbox/core/host"
)

// Fake utilities so engine tests don't depend on the real command set.
var fakeCommands = map[string]host.ProcessFunc{
	"emit": func(p *host.Proc) int {
		for i, arg := range p.Args()[1:] {
			if i > 0 {
				fmt.Fprint(p.Stdout(), " ")
			}
			fmt.Fprint(p.Stdout(), arg)
		}
		fmt.Fprintln(p.Stdout())
		return 0
	},
	"pass": func(p *host.Proc) int {
		io.Copy(p.Stdout(), p.Stdin())
		return 0
	},
	"fail": func(p *host.Proc) int {
		fmt.Fprintln(p.Stderr(), "fail: something broke")
		return 1
	},
	"failquiet": func(p *host.Proc) int {
		return 3
	},
	"warn": func(p *host.Proc) int {
		fmt.Fprintln(p.Stdout(), "warned output")
		fmt.Fprintln(p.Stderr(), "warn: heads up")
		return 0
	},
}

func fakeResolver(name string) (host.ProcessFunc, bool) {
	proc, ok := fakeCommands[name]
	return proc, ok
}

type engineFixture struct {
	engine  *Engine
	session *Session
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	fs := afero.NewMemMapFs()
	session := NewSession(fs, "/")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	engine := &Engine{
		Resolver: fakeResolver,
		Sink:     &Sink{Terminal: stdout},
		Stderr:   stderr,
	}

	return &engineFixture{engine: engine, session: session, stdout: stdout, stderr: stderr}
}

func (f *engineFixture) run(t *testing.T, line string) error {
	t.Helper()

	pipeline, target, err := Resolve(mustTokenize(t, line))
	require.NoError(t, err)
	return f.engine.Run(pipeline, target, f.session)
}

func TestEngine_singleStage(t *testing.T) {
	f := newEngineFixture(t)

	require.NoError(t, f.run(t, "emit hi"))
	assert.Equal(t, "hi\n", f.stdout.String())
	assert.Empty(t, f.stderr.String())
}

func TestEngine_pipeCarriesOutput(t *testing.T) {
	f := newEngineFixture(t)

	require.NoError(t, f.run(t, "emit hi | pass | pass"))
	assert.Equal(t, "hi\n", f.stdout.String())
}

func TestEngine_commandNotFound(t *testing.T) {
	f := newEngineFixture(t)

	err := f.run(t, "bogus | emit x")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "bogus", notFound.Name)

	// Downstream stages never ran and nothing reached the terminal.
	assert.Empty(t, f.stdout.String())
	assert.Contains(t, f.stderr.String(), "bogus: command not found")
}

func TestEngine_notFoundLeavesTargetUntouched(t *testing.T) {
	f := newEngineFixture(t)

	require.Error(t, f.run(t, "bogus > out.txt"))

	exists, err := afero.Exists(f.session.FS, "/out.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEngine_failedStageStopsPipeline(t *testing.T) {
	f := newEngineFixture(t)

	err := f.run(t, "emit hi | fail | pass")
	require.Error(t, err)

	// The last good output is not flushed, only the error text.
	assert.Empty(t, f.stdout.String())
	assert.Contains(t, f.stderr.String(), "fail: something broke")
}

func TestEngine_quietFailureGetsDiagnostic(t *testing.T) {
	f := newEngineFixture(t)

	err := f.run(t, "failquiet")
	require.Error(t, err)
	assert.Contains(t, f.stderr.String(), "failquiet: exited with status 3")
}

func TestEngine_stageStderrIsNeverDropped(t *testing.T) {
	f := newEngineFixture(t)

	require.NoError(t, f.run(t, "warn | pass"))
	assert.Equal(t, "warned output\n", f.stdout.String())
	assert.Contains(t, f.stderr.String(), "warn: heads up")
}

func TestEngine_redirectTruncateAndAppend(t *testing.T) {
	f := newEngineFixture(t)

	require.NoError(t, f.run(t, "emit a > f.txt"))
	require.NoError(t, f.run(t, "emit b >> f.txt"))

	content, err := afero.ReadFile(f.session.FS, "/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))

	// Nothing went to the terminal while redirected.
	assert.Empty(t, f.stdout.String())

	// A later truncate replaces everything accumulated so far.
	require.NoError(t, f.run(t, "emit c > f.txt"))
	content, err = afero.ReadFile(f.session.FS, "/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "c\n", string(content))
}

func TestEngine_appendTwiceAccumulatesInOrder(t *testing.T) {
	f := newEngineFixture(t)

	require.NoError(t, f.run(t, "emit one >> f.txt"))
	require.NoError(t, f.run(t, "emit two >> f.txt"))

	content, err := afero.ReadFile(f.session.FS, "/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))
}

func TestEngine_pipeIntoRedirect(t *testing.T) {
	f := newEngineFixture(t)

	require.NoError(t, f.run(t, "emit hi | pass > out.txt"))

	content, err := afero.ReadFile(f.session.FS, "/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(content))
	assert.Empty(t, f.stdout.String())
}

func TestEngine_redirectResolvesAgainstCwd(t *testing.T) {
	f := newEngineFixture(t)
	require.NoError(t, f.session.FS.MkdirAll("/dir", 0755))
	require.NoError(t, f.session.Chdir("dir"))

	require.NoError(t, f.run(t, "emit hi > out.txt"))

	content, err := afero.ReadFile(f.session.FS, "/dir/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(content))
}

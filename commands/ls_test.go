package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shbox/core/host/hosttest"
)

func newLsCmd(t *testing.T, arg ...string) *hosttest.Cmd {
	t.Helper()

	cmd := hosttest.Command(Ls, "ls", arg...)
	require.NoError(t, cmd.FS.MkdirAll("/home/dir", 0755))
	require.NoError(t, afero.WriteFile(cmd.FS, "/home/b.txt", []byte("b"), 0644))
	require.NoError(t, afero.WriteFile(cmd.FS, "/home/a.txt", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(cmd.FS, "/home/.hidden", []byte("h"), 0644))
	cmd.Dir = "/home"

	return cmd
}

func TestLs_sortedNames(t *testing.T) {
	cmd := newLsCmd(t)

	out, err := cmd.Output()
	require.NoError(t, err)

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "a.txt\nb.txt\ndir\n", string(out))
}

func TestLs_allShowsDotfiles(t *testing.T) {
	cmd := newLsCmd(t, "-a")

	out, err := cmd.Output()
	require.NoError(t, err)

	assert.Equal(t, ".hidden\na.txt\nb.txt\ndir\n", string(out))
}

func TestLs_longListing(t *testing.T) {
	cmd := newLsCmd(t, "-l")

	out, err := cmd.Output()
	require.NoError(t, err)

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Contains(t, string(out), "a.txt")
	// Directories are marked in the type column.
	assert.Regexp(t, `(?m)^d\s+\d+ dir$`, string(out))
}

func TestLs_missingDirectory(t *testing.T) {
	cmd := hosttest.Command(Ls, "ls", "nowhere")

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, string(out), "ls: nowhere:")
}

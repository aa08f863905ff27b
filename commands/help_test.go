package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shbox/core/host/hosttest"
)

func TestHelp(t *testing.T) {
	cmd := hosttest.Command(Help, "help")

	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)

	// Every registered utility and both shell builtins show up.
	for _, entry := range List() {
		assert.Contains(t, string(out), entry.Name)
	}
	assert.Contains(t, string(out), "cd")
	assert.Contains(t, string(out), "exit")
	assert.Contains(t, string(out), "CMD | CMD")
	assert.Contains(t, string(out), "CMD >> FILE")
}

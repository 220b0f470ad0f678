package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionBashGeneration(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "# bash completion for shieldtop")
	assert.Contains(t, output, "complete -o default -F __start_shieldtop shieldtop")
}

func TestCompletionZshGeneration(t *testing.T) {
	var buf bytes.Buffer
	err := rootCmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "#compdef shieldtop")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	err := completionCmd.Args(completionCmd, []string{"tcsh"})
	assert.Error(t, err)
}

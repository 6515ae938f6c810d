package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "gitbrowse dev\n", out.String())
}

func TestRootCommand_RejectsBadRepo(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--repo", t.TempDir() + "/missing"})

	assert.Error(t, cmd.Execute())
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"repo", "host", "port", "backend", "git", "git-timeout", "dev"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

package gitrepo

import (
	"context"
	"testing"

	"github.com/gomantics/gitbrowse/internal/testrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_ListCommits(t *testing.T) {
	testrepo.RequireGit(t)
	t.Parallel()

	repo, hashes := historyFixture(t)
	g := NewCLI(repo.Dir, "", 0)

	got, err := g.ListCommits(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, wantFixtureCommits(hashes), got)
	for _, c := range got {
		assert.Len(t, c.Hash, 40)
	}
}

func TestCLI_ListCommits_Limit(t *testing.T) {
	testrepo.RequireGit(t)
	t.Parallel()

	repo, last := longHistory(t, 25)
	g := NewCLI(repo.Dir, "", 0)

	got, err := g.ListCommits(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, got, 20)
	assert.Equal(t, last.String(), got[0].Hash)
	assert.Equal(t, "commit 24", got[0].Message)
	assert.Equal(t, "commit 5", got[19].Message)
}

func TestCLI_ListCommits_EmptyRepository(t *testing.T) {
	testrepo.RequireGit(t)
	t.Parallel()

	repo := testrepo.New(t)
	_, err := NewCLI(repo.Dir, "", 0).ListCommits(context.Background(), 20)
	assert.Error(t, err)
}

func TestCLI_ListCommits_MissingBinary(t *testing.T) {
	t.Parallel()

	repo := testrepo.New(t)
	_, err := NewCLI(repo.Dir, "gitbrowse-no-such-git", 0).ListCommits(context.Background(), 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git log")
}

func TestCLI_Show(t *testing.T) {
	testrepo.RequireGit(t)
	t.Parallel()

	repo, hashes := historyFixture(t)
	g := NewCLI(repo.Dir, "", 0)
	ctx := context.Background()

	out, err := g.Show(ctx, "HEAD")
	require.NoError(t, err)
	assert.Contains(t, out, "commit "+hashes[0].String())
	assert.Contains(t, out, "diff --git a/README.md b/README.md")
	assert.Contains(t, out, "+more")

	out, err = g.Show(ctx, hashes[2].String())
	require.NoError(t, err)
	assert.Contains(t, out, "Initial commit")
	assert.Contains(t, out, "+# demo")

	out, err = g.Show(ctx, "HEAD~1")
	require.NoError(t, err)
	assert.Contains(t, out, "src/main.go")
}

func TestCLI_Show_UnknownRef(t *testing.T) {
	testrepo.RequireGit(t)
	t.Parallel()

	repo, _ := historyFixture(t)

	out, err := NewCLI(repo.Dir, "", 0).Show(context.Background(), "nonexistent-ref")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "git show")
	assert.Contains(t, err.Error(), "nonexistent-ref")
}

func TestCLI_Show_RejectsOptionLikeRefs(t *testing.T) {
	t.Parallel()

	repo := testrepo.New(t)
	g := NewCLI(repo.Dir, "", 0)

	for _, ref := range []string{"--output=/tmp/gitbrowse-pwned", "-p", ""} {
		_, err := g.Show(context.Background(), ref)
		assert.ErrorIs(t, err, ErrInvalidRef, ref)
	}
}

func TestCLI_Show_ShellMetacharactersAreInert(t *testing.T) {
	testrepo.RequireGit(t)
	t.Parallel()

	repo, _ := historyFixture(t)

	_, err := NewCLI(repo.Dir, "", 0).Show(context.Background(), "HEAD; touch pwned")
	require.Error(t, err)
	assert.NoFileExists(t, repo.Dir+"/pwned")
	assert.NoFileExists(t, "pwned")
}

func TestCLI_CanceledContext(t *testing.T) {
	testrepo.RequireGit(t)
	t.Parallel()

	repo, _ := historyFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCLI(repo.Dir, "", 0).ListCommits(ctx, 20)
	assert.Error(t, err)
}

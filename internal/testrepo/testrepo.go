// Package testrepo builds throwaway git repositories for tests with go-git,
// so fixtures do not depend on the git executable or the user's git config.
package testrepo

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Epoch is the author date of the first commit. Each further commit is one
// day later.
var Epoch = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

type Repo struct {
	Dir string
	Git *git.Repository

	t    testing.TB
	next time.Time
}

// New initializes an empty repository in a temporary directory. Dir has
// symlinks evaluated.
func New(t testing.TB) *Repo {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	return &Repo{Dir: dir, Git: repo, t: t, next: Epoch}
}

// Write creates or replaces a file in the work tree.
func (r *Repo) Write(path, content string) {
	r.t.Helper()
	full := filepath.Join(r.Dir, filepath.FromSlash(path))
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(r.t, os.WriteFile(full, []byte(content), 0o644))
}

// Commit stages paths and commits them as author.
func (r *Repo) Commit(message, author string, paths ...string) plumbing.Hash {
	r.t.Helper()

	wt, err := r.Git.Worktree()
	require.NoError(r.t, err)
	for _, p := range paths {
		_, err := wt.Add(p)
		require.NoError(r.t, err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author,
			Email: "dev@example.com",
			When:  r.next,
		},
	})
	require.NoError(r.t, err)

	r.next = r.next.Add(24 * time.Hour)
	return hash
}

// WriteAndCommit writes one file and commits it.
func (r *Repo) WriteAndCommit(path, content, message, author string) plumbing.Hash {
	r.t.Helper()
	r.Write(path, content)
	return r.Commit(message, author, path)
}

// RequireGit skips the test when no git executable is on PATH.
func RequireGit(t testing.TB) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not found")
	}
}

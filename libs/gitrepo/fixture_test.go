package gitrepo

import (
	"fmt"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/gomantics/gitbrowse/internal/testrepo"
)

// historyFixture commits three changes and returns the hashes newest first.
func historyFixture(t *testing.T) (*testrepo.Repo, []plumbing.Hash) {
	t.Helper()

	repo := testrepo.New(t)
	h1 := repo.WriteAndCommit("README.md", "# demo\n", "Initial commit", "Ada Lovelace")
	h2 := repo.WriteAndCommit("src/main.go", "package main\n", "Add main\n\nLonger body here.\n", "Grace Hopper")
	h3 := repo.WriteAndCommit("README.md", "# demo\n\nmore\n", "docs: a | b", "Ada Lovelace")
	return repo, []plumbing.Hash{h3, h2, h1}
}

func wantFixtureCommits(hashes []plumbing.Hash) []Commit {
	return []Commit{
		{Hash: hashes[0].String(), Message: "docs: a | b", Author: "Ada Lovelace", Date: "2024-01-17"},
		{Hash: hashes[1].String(), Message: "Add main", Author: "Grace Hopper", Date: "2024-01-16"},
		{Hash: hashes[2].String(), Message: "Initial commit", Author: "Ada Lovelace", Date: "2024-01-15"},
	}
}

// longHistory commits n changes to the same file.
func longHistory(t *testing.T, n int) (*testrepo.Repo, plumbing.Hash) {
	t.Helper()

	repo := testrepo.New(t)
	var last plumbing.Hash
	for i := range n {
		last = repo.WriteAndCommit("counter.txt", fmt.Sprintf("%d\n", i), fmt.Sprintf("commit %d", i), "Ada")
	}
	return repo, last
}

package gitrepo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// HeadInfo describes what HEAD points at
type HeadInfo struct {
	Hash   string
	Branch string
}

// Open opens the repository that contains path. path may be the work tree
// root or any directory below it.
func Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}
	return repo, nil
}

// Head returns the current HEAD. ok is false for a repository without commits.
func Head(repo *git.Repository) (info HeadInfo, ok bool, err error) {
	ref, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return HeadInfo{}, false, nil
	}
	if err != nil {
		return HeadInfo{}, false, fmt.Errorf("failed to get HEAD: %w", err)
	}

	// Detached HEAD reports as "HEAD", like git does
	branch := "HEAD"
	if ref.Name().IsBranch() {
		branch = ref.Name().Short()
	}

	return HeadInfo{
		Hash:   ref.Hash().String(),
		Branch: branch,
	}, true, nil
}

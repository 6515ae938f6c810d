package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
)

const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

var ErrInvalidRef = errors.New("invalid commit reference")

// Commit is one line of history as shown in the commit list.
type Commit struct {
	Hash    string
	Message string // subject line only
	Author  string
	Date    string // YYYY-MM-DD, author date
}

// Backend answers the history queries of the browser.
//
// The default implementation shells out to the git executable. The native one
// reads the object database with go-git and needs no git binary.
type Backend interface {
	// ListCommits returns up to limit commits reachable from HEAD, newest first.
	ListCommits(ctx context.Context, limit int) ([]Commit, error)
	// Show returns the patch text of a single commit reference.
	Show(ctx context.Context, ref string) (string, error)
}

// Options selects and configures a Backend.
type Options struct {
	Kind    string
	Binary  string
	Timeout time.Duration
}

// NewBackend builds the backend named by opts.Kind for the work tree at root.
// repo is only used by the native backend.
func NewBackend(root string, repo *git.Repository, opts Options) (Backend, error) {
	switch opts.Kind {
	case "", BackendCLI:
		return NewCLI(root, opts.Binary, opts.Timeout), nil
	case BackendNative:
		if repo == nil {
			return nil, errors.New("native backend needs an open repository")
		}
		return NewNative(repo), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q", opts.Kind)
	}
}

// checkRef rejects references git would parse as an option.
func checkRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidRef)
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return nil
}

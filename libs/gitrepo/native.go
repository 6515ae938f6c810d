package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// gitDateFormat is the layout of git's default "Date:" header.
const gitDateFormat = "Mon Jan 2 15:04:05 2006 -0700"

// Native reads history with go-git.
type Native struct {
	repo *git.Repository
}

func NewNative(repo *git.Repository) *Native {
	return &Native{repo: repo}
}

func (n *Native) ListCommits(ctx context.Context, limit int) ([]Commit, error) {
	head, err := n.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := n.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}
	defer iter.Close()

	commits := make([]Commit, 0, max(limit, 0))
	for len(commits) < limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read commits: %w", err)
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String(),
			Message: subject(c.Message),
			Author:  c.Author.Name,
			Date:    c.Author.When.Format(time.DateOnly),
		})
	}
	return commits, nil
}

// Show renders the commit header the way "git show" does, followed by the
// patch against the first parent.
func (n *Native) Show(ctx context.Context, ref string) (string, error) {
	if err := checkRef(ref); err != nil {
		return "", err
	}

	hash, err := n.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", ref, err)
	}
	commit, err := n.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", ref, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("read tree: %w", err)
	}
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return "", fmt.Errorf("read parent: %w", err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return "", fmt.Errorf("read parent tree: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return "", fmt.Errorf("diff trees: %w", err)
	}
	patch, err := changes.Patch()
	if err != nil {
		return "", fmt.Errorf("build patch: %w", err)
	}

	header := formatHeader(commit)
	body := patch.String()
	if body == "" {
		return header, nil
	}
	return header + "\n" + body, nil
}

func formatHeader(c *object.Commit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "commit %s\n", c.Hash)
	if len(c.ParentHashes) > 1 {
		parents := make([]string, len(c.ParentHashes))
		for i, h := range c.ParentHashes {
			parents[i] = h.String()[:7]
		}
		fmt.Fprintf(&b, "Merge: %s\n", strings.Join(parents, " "))
	}
	fmt.Fprintf(&b, "Author: %s <%s>\n", c.Author.Name, c.Author.Email)
	fmt.Fprintf(&b, "Date:   %s\n\n", c.Author.When.Format(gitDateFormat))
	for _, line := range strings.Split(strings.TrimRight(c.Message, "\n"), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}
	return b.String()
}

func subject(message string) string {
	line, _, _ := strings.Cut(strings.TrimLeft(message, "\n"), "\n")
	return strings.TrimSpace(line)
}

package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomantics/gitbrowse/libs/gitrepo"
	"go.uber.org/zap"
)

const (
	// MaxCommits bounds every commit listing.
	MaxCommits = 20

	// DefaultRef is shown when no commit is requested.
	DefaultRef = "HEAD"
)

// Service answers history queries against one repository
type Service struct {
	l       *zap.Logger
	backend gitrepo.Backend
}

// New creates a history service
func New(l *zap.Logger, backend gitrepo.Backend) *Service {
	return &Service{l: l, backend: backend}
}

// Recent returns the most recent commits reachable from HEAD, newest first.
func (s *Service) Recent(ctx context.Context) ([]gitrepo.Commit, error) {
	commits, err := s.backend.ListCommits(ctx, MaxCommits)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}
	if len(commits) > MaxCommits {
		commits = commits[:MaxCommits]
	}
	return commits, nil
}

// Diff returns the raw patch text of ref. A blank ref means DefaultRef.
func (s *Service) Diff(ctx context.Context, ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		ref = DefaultRef
	}

	s.l.Debug("showing commit", zap.String("ref", ref))

	return s.backend.Show(ctx, ref)
}

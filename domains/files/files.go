package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomantics/gitbrowse/pkg/textconv"
)

var (
	ErrOutsideRoot  = errors.New("path is outside the repository root")
	ErrNotFound     = errors.New("path not found")
	ErrNotDirectory = errors.New("path is not a directory")
	ErrNotRegular   = errors.New("path is not a regular file")
)

// HiddenPrefix marks entries that are never listed.
const HiddenPrefix = "."

// Service serves read-only views of the working tree under one root.
type Service struct {
	root string
}

// New creates a Service rooted at root. root must already be absolute with
// symlinks evaluated (see config.CanonicalRoot).
func New(root string) (*Service, error) {
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("repository root %q is not absolute", root)
	}
	return &Service{root: filepath.Clean(root)}, nil
}

// Root returns the repository root
func (s *Service) Root() string {
	return s.root
}

// List returns the non-hidden immediate children of the directory at rel,
// sorted by name.
func (s *Service) List(ctx context.Context, rel string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := s.Resolve(rel)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("list %q: %w", rel, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", rel, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list %q: %w", rel, ErrNotDirectory)
	}

	// os.ReadDir sorts by filename.
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", rel, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if strings.HasPrefix(d.Name(), HiddenPrefix) {
			continue
		}
		entries = append(entries, Entry{
			Name: d.Name(),
			Kind: s.kindOf(dir, d),
		})
	}
	return entries, nil
}

// Read returns the full content of the regular file at rel. Invalid UTF-8 is
// replaced, never reported. There is no size limit.
func (s *Service) Read(ctx context.Context, rel string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.Resolve(rel)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("read %q: %w", rel, ErrNotRegular)
	}

	// The OS error is returned as is; its text is shown to the user.
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return textconv.FromBytes(b), nil
}

// kindOf follows symlinks the way Resolve does, so an entry listed as a
// directory can be listed in turn. Links that resolve to nothing count as
// files.
func (s *Service) kindOf(dir string, d fs.DirEntry) Kind {
	if d.IsDir() {
		return KindDir
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return KindFile
	}
	rel, err := filepath.Rel(s.root, filepath.Join(dir, d.Name()))
	if err != nil {
		return KindFile
	}
	target, err := s.Resolve(rel)
	if err != nil {
		return KindFile
	}
	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		return KindDir
	}
	return KindFile
}

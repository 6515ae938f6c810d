package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Resolve maps a repository-relative path to an absolute path inside the
// root. Leading slashes are ignored, so "/a.txt" and "a.txt" are the same
// file. Paths whose ".." segments climb above the root return ErrOutsideRoot.
// Symlinks are evaluated as if the root were the filesystem root, so a link
// cannot lead out of the repository. An absolute link target that already
// lies inside the root is followed to that place.
func (s *Service) Resolve(rel string) (string, error) {
	joined := filepath.Join(s.root, filepath.FromSlash(rel))
	if !within(s.root, joined) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}

	inner, err := filepath.Rel(s.root, joined)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}

	resolved, err := securejoin.SecureJoinVFS(s.root, inner, rootedVFS{root: s.root})
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", rel, err)
	}
	if !within(s.root, resolved) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}
	return resolved, nil
}

// within reports whether path is root or one of its descendants. It compares
// path components, not string prefixes: "/repo-evil" is not within "/repo".
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// rootedVFS rewrites absolute symlink targets under root to root-relative
// ones, so SecureJoin lands on the same file the OS would. Other targets are
// left alone and get clamped to the root.
type rootedVFS struct {
	root string
}

func (v rootedVFS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

func (v rootedVFS) Readlink(name string) (string, error) {
	dest, err := os.Readlink(name)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(dest) || !within(v.root, filepath.Clean(dest)) {
		return dest, nil
	}
	rel, err := filepath.Rel(v.root, filepath.Clean(dest))
	if err != nil {
		return dest, nil
	}
	return string(filepath.Separator) + rel, nil
}

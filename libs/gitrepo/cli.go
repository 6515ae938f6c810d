package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/gomantics/gitbrowse/pkg/textconv"
)

// logFormat yields "hash|subject|author|date" per commit; see parseLog.
const logFormat = "--pretty=format:%H|%s|%an|%ad"

// CLI runs the git executable against a work tree. Arguments are always
// passed as a vector, never through a shell.
type CLI struct {
	root    string
	binary  string
	timeout time.Duration
}

// NewCLI creates a CLI backend. An empty binary means "git" from PATH.
func NewCLI(root, binary string, timeout time.Duration) *CLI {
	if binary == "" {
		binary = "git"
	}
	return &CLI{root: root, binary: binary, timeout: timeout}
}

func (g *CLI) ListCommits(ctx context.Context, limit int) ([]Commit, error) {
	out, err := g.run(ctx, "git log",
		"log",
		logFormat,
		"--date=short",
		"-n", strconv.Itoa(limit),
	)
	if err != nil {
		return nil, err
	}
	commits, err := parseLog(out)
	if err != nil {
		return nil, fmt.Errorf("parse git log: %w", err)
	}
	return commits, nil
}

func (g *CLI) Show(ctx context.Context, ref string) (string, error) {
	if err := checkRef(ref); err != nil {
		return "", err
	}
	return g.run(ctx, "git show", "show", "--no-color", ref)
}

// run executes git -C <root> args... and returns stdout as UTF-8 text. On
// failure the error carries git's trimmed stderr.
func (g *CLI) run(ctx context.Context, name string, args ...string) (string, error) {
	if g.root == "" {
		return "", fmt.Errorf("repository root not set")
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmdArgs := append([]string{"-C", g.root}, args...)
	cmd := exec.CommandContext(ctx, g.binary, cmdArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%s: %v: %s", name, err, textconv.FromString(strings.TrimSpace(stderr.String())))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return textconv.FromBytes(stdout.Bytes()), nil
}

// Package config holds the startup settings of the server. Values come from
// command-line flags, with GITBROWSE_* environment variables as fallback.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "GITBROWSE"

	DefaultHost    = "0.0.0.0"
	DefaultPort    = 3001
	DefaultBackend = "cli"
	DefaultGitBin  = "git"
)

type Config struct {
	Dev    bool
	Repo   RepoConfig
	Server ServerConfig
	Git    GitConfig
}

type RepoConfig struct {
	// Root is absolute with symlinks evaluated once Load returns.
	Root string
}

type ServerConfig struct {
	Host string
	Port int
}

type GitConfig struct {
	Backend string
	Binary  string
	// Timeout bounds each git invocation. Zero means no limit.
	Timeout time.Duration
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IsDev reports whether development logging is enabled.
func (c Config) IsDev() bool {
	return c.Dev
}

// RegisterFlags adds every setting to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("repo", ".", "repository to browse")
	fs.String("host", DefaultHost, "interface to listen on")
	fs.Int("port", DefaultPort, "port to listen on")
	fs.String("backend", DefaultBackend, "history backend: cli or native")
	fs.String("git", DefaultGitBin, "git executable used by the cli backend")
	fs.Duration("git-timeout", 0, "limit for each git invocation (0 disables)")
	fs.Bool("dev", false, "development logging")
}

// Load reads the settings registered by RegisterFlags. A flag set on the
// command line wins over the matching environment variable, which wins over
// the flag default.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	// GetInt would turn an unparseable value into 0.
	port, err := cast.ToIntE(v.Get("port"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid port %q: %w", v.GetString("port"), err)
	}

	cfg := Config{
		Dev: v.GetBool("dev"),
		Repo: RepoConfig{
			Root: v.GetString("repo"),
		},
		Server: ServerConfig{
			Host: v.GetString("host"),
			Port: port,
		},
		Git: GitConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
			Binary:  v.GetString("git"),
			Timeout: v.GetDuration("git-timeout"),
		},
	}

	root, err := CanonicalRoot(cfg.Repo.Root)
	if err != nil {
		return Config{}, err
	}
	cfg.Repo.Root = root

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CanonicalRoot makes path absolute, evaluates symlinks and checks that it is
// a directory.
func CanonicalRoot(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("repository root is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve repository root %q: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve repository root %q: %w", path, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("stat repository root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("repository root %q is not a directory", resolved)
	}
	return resolved, nil
}

// Validate checks values that Load cannot coerce.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Server.Port)
	}
	switch c.Git.Backend {
	case "cli", "native":
	default:
		return fmt.Errorf("unknown backend %q (want cli or native)", c.Git.Backend)
	}
	if c.Git.Backend == "cli" && strings.TrimSpace(c.Git.Binary) == "" {
		return errors.New("git executable is required for the cli backend")
	}
	if c.Git.Timeout < 0 {
		return fmt.Errorf("git timeout %s is negative", c.Git.Timeout)
	}
	return nil
}

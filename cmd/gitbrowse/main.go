package main

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/gomantics/gitbrowse/api"
	"github.com/gomantics/gitbrowse/config"
	"github.com/gomantics/gitbrowse/domains/files"
	"github.com/gomantics/gitbrowse/domains/history"
	"github.com/gomantics/gitbrowse/libs/gitrepo"
	"github.com/gomantics/gitbrowse/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gitbrowse",
		Short:        "Browse a git repository over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gitbrowse", version)
		},
	})

	return cmd
}

func run(cfg config.Config) error {
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			logger.New,
			openRepo,
			newBackend,
			newFiles,
			history.New,
			api.New,
		),
		fx.Decorate(func(l *zap.Logger) *zap.Logger {
			return l.With(zap.String("service", "gitbrowse"))
		}),
		fx.Invoke(
			api.Run,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{
				Logger: l,
			}
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}

func openRepo(cfg config.Config) (*git.Repository, error) {
	return gitrepo.Open(cfg.Repo.Root)
}

func newBackend(cfg config.Config, repo *git.Repository) (gitrepo.Backend, error) {
	return gitrepo.NewBackend(cfg.Repo.Root, repo, gitrepo.Options{
		Kind:    cfg.Git.Backend,
		Binary:  cfg.Git.Binary,
		Timeout: cfg.Git.Timeout,
	})
}

func newFiles(cfg config.Config) (*files.Service, error) {
	return files.New(cfg.Repo.Root)
}

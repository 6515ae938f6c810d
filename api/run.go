package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/gomantics/gitbrowse/api/commits"
	"github.com/gomantics/gitbrowse/api/health"
	"github.com/gomantics/gitbrowse/api/tree"
	"github.com/gomantics/gitbrowse/api/ui"
	"github.com/gomantics/gitbrowse/config"
	"github.com/gomantics/gitbrowse/domains/files"
	"github.com/gomantics/gitbrowse/domains/history"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params are the dependencies of the HTTP API.
type Params struct {
	fx.In

	Config  config.Config
	Logger  *zap.Logger
	Files   *files.Service
	History *history.Service
	Repo    *git.Repository `optional:"true"`
}

// New builds the echo instance with middleware and every route.
func New(p Params) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(p.Logger)

	configureMiddleware(e, p.Config, p.Logger)
	configureRoutes(e, p)

	return e
}

func Run(lc fx.Lifecycle, cfg config.Config, l *zap.Logger, e *echo.Echo) error {
	// No WriteTimeout: a response may wait on git for as long as git runs.
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}
			go func() {
				l.Info("gitbrowse listening",
					zap.String("addr", ln.Addr().String()),
					zap.String("repo", cfg.Repo.Root),
					zap.String("backend", cfg.Git.Backend),
				)
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					l.Error("error serving http", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			l.Info("shutdown signal received")
			return server.Shutdown(ctx)
		},
	})

	return nil
}

func configureMiddleware(e *echo.Echo, cfg config.Config, l *zap.Logger) {
	// Request ID must come first
	e.Use(middleware.RequestID())

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1 << 12, // 4 KB
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			l.Error("recovered from panic",
				zap.Error(err),
				zap.ByteString("stack", stack),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		},
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
		LogLatency:   true,
		LogRemoteIP:  true,
		LogMethod:    true,
		LogURI:       true,
		LogRequestID: true,
		LogStatus:    true,
	}))

	if cfg.IsDev() {
		e.IPExtractor = echo.ExtractIPDirect()
	} else {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}
}

func configureRoutes(e *echo.Echo, p Params) {
	ui.Configure(e, p.Logger)
	tree.Configure(e, p.Logger, p.Files)
	commits.Configure(e, p.Logger, p.History)
	health.Configure(e, p.Logger, p.Repo)
}

// errorHandler answers routing errors (unknown path, wrong method) with the
// bare status code. Handlers themselves never fail a request.
func errorHandler(l *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		} else {
			l.Error("unhandled handler error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		}

		if err := c.NoContent(code); err != nil {
			l.Warn("failed to write error response", zap.Error(err))
		}
	}
}

package tree

import (
	"errors"

	"github.com/gomantics/gitbrowse/api/web"
	"github.com/gomantics/gitbrowse/domains/files"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger, svc *files.Service) {
	e.GET("/api/files", web.Wrap(List(svc), l))
	e.GET("/api/file", web.Wrap(Get(svc), l))
}

// logFailure records why a path request degraded to an empty answer.
func logFailure(c web.Context, msg, path string, err error) {
	if errors.Is(err, files.ErrOutsideRoot) {
		c.L.Warn("rejected path outside repository root", zap.String("path", path))
		return
	}
	c.L.Debug(msg, zap.String("path", path), zap.Error(err))
}

package health

import (
	"github.com/go-git/go-git/v5"
	"github.com/gomantics/gitbrowse/api/web"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Configure sets up the health routes
func Configure(e *echo.Echo, l *zap.Logger, repo *git.Repository) {
	e.GET("/api/health", web.Wrap(Get(repo), l))
}

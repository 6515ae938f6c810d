package commits

import (
	"github.com/gomantics/gitbrowse/api/web"
	"github.com/gomantics/gitbrowse/domains/history"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger, svc *history.Service) {
	e.GET("/api/commits", web.Wrap(List(svc), l))
	e.GET("/api/diff", web.Wrap(Diff(svc), l))
}

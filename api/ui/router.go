// Package ui serves the single-page repository browser.
package ui

import (
	_ "embed"

	"github.com/gomantics/gitbrowse/api/web"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

//go:embed index.html
var indexHTML []byte

func Configure(e *echo.Echo, l *zap.Logger) {
	h := web.Wrap(Index, l)
	e.GET("/", h)
	e.GET("/index.html", h)
}

// Index handles GET / and GET /index.html
func Index(c web.Context) error {
	return c.Page(indexHTML)
}

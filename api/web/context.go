package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Context wraps echo.Context with additional fields
type Context struct {
	echo.Context
	L *zap.Logger
}

// HandlerFunc is a handler function that uses our custom Context
type HandlerFunc func(ctx Context) error

// Wrap wraps a handler function to use our custom context
func Wrap(h HandlerFunc, l *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)

		ctx := Context{
			Context: c,
			L:       l.With(zap.String("request_id", rid)),
		}

		return h(ctx)
	}
}

// OK sends a 200 JSON response with data
func (c Context) OK(data any) error {
	return c.JSON(http.StatusOK, data)
}

// Text sends a 200 text/plain response
func (c Context) Text(body string) error {
	return c.String(http.StatusOK, body)
}

// Page sends a 200 HTML response
func (c Context) Page(html []byte) error {
	return c.HTMLBlob(http.StatusOK, html)
}

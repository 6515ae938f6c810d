package tree

import (
	"errors"

	"github.com/gomantics/gitbrowse/api/web"
	"github.com/gomantics/gitbrowse/domains/files"
	"go.uber.org/zap"
)

// NotFoundText is the body returned for anything that is not a readable
// regular file inside the repository.
const NotFoundText = "File not found"

// Get handles GET /api/file?path=P
//
// Read errors other than "not found" are written as the response body.
func Get(svc *files.Service) web.HandlerFunc {
	return func(c web.Context) error {
		path := c.QueryParam("path")

		content, err := svc.Read(c.Request().Context(), path)
		switch {
		case err == nil:
			return c.Text(content)
		case errors.Is(err, files.ErrOutsideRoot),
			errors.Is(err, files.ErrNotFound),
			errors.Is(err, files.ErrNotRegular):
			logFailure(c, "file not found", path, err)
			return c.Text(NotFoundText)
		default:
			c.L.Warn("failed to read file", zap.String("path", path), zap.Error(err))
			return c.Text(err.Error())
		}
	}
}

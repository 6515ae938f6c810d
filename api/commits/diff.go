package commits

import (
	"github.com/gomantics/gitbrowse/api/web"
	"github.com/gomantics/gitbrowse/domains/history"
	"go.uber.org/zap"
)

// Diff handles GET /api/diff?commit=C
//
// On failure the error text, which includes git's own message, is the body.
func Diff(svc *history.Service) web.HandlerFunc {
	return func(c web.Context) error {
		ctx := c.Request().Context()
		ref := c.QueryParam("commit")

		patch, err := svc.Diff(ctx, ref)
		if err != nil {
			c.L.Warn("failed to show commit", zap.String("commit", ref), zap.Error(err))
			return c.Text(err.Error())
		}

		return c.Text(patch)
	}
}

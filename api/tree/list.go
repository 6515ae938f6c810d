package tree

import (
	"github.com/gomantics/gitbrowse/api/web"
	"github.com/gomantics/gitbrowse/domains/files"
)

// EntryResponse is one child of a listed directory
type EntryResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// List handles GET /api/files?path=P
//
// Any failure, including a path outside the repository, yields an empty list.
func List(svc *files.Service) web.HandlerFunc {
	return func(c web.Context) error {
		path := c.QueryParam("path")

		entries, err := svc.List(c.Request().Context(), path)
		if err != nil {
			logFailure(c, "failed to list directory", path, err)
			return c.OK([]EntryResponse{})
		}

		resp := make([]EntryResponse, len(entries))
		for i, e := range entries {
			resp[i] = EntryResponse{
				Name: e.Name,
				Type: e.Kind.String(),
			}
		}

		return c.OK(resp)
	}
}

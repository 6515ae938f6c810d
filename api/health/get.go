package health

import (
	"github.com/go-git/go-git/v5"
	"github.com/gomantics/gitbrowse/api/web"
	"github.com/gomantics/gitbrowse/libs/gitrepo"
)

// GetResponse is the health check response
type GetResponse struct {
	Status     string `json:"status"`
	Repository string `json:"repository"`
	Head       string `json:"head,omitempty"`
	Branch     string `json:"branch,omitempty"`
}

// Get handles GET /api/health
func Get(repo *git.Repository) web.HandlerFunc {
	return func(c web.Context) error {
		resp := GetResponse{Status: "ok"}

		if repo == nil {
			resp.Repository = "unavailable"
			return c.OK(resp)
		}

		head, ok, err := gitrepo.Head(repo)
		switch {
		case err != nil:
			resp.Repository = "error: " + err.Error()
		case !ok:
			resp.Repository = "empty"
		default:
			resp.Repository = "ok"
			resp.Head = head.Hash
			resp.Branch = head.Branch
		}

		return c.OK(resp)
	}
}

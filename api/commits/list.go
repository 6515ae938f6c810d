package commits

import (
	"github.com/gomantics/gitbrowse/api/web"
	"github.com/gomantics/gitbrowse/domains/history"
	"go.uber.org/zap"
)

// CommitResponse is one entry of the commit list
type CommitResponse struct {
	Hash    string `json:"hash"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// List handles GET /api/commits
func List(svc *history.Service) web.HandlerFunc {
	return func(c web.Context) error {
		ctx := c.Request().Context()

		commits, err := svc.Recent(ctx)
		if err != nil {
			c.L.Warn("failed to list commits", zap.Error(err))
			return c.OK([]CommitResponse{})
		}

		resp := make([]CommitResponse, len(commits))
		for i, commit := range commits {
			resp[i] = CommitResponse{
				Hash:    commit.Hash,
				Message: commit.Message,
				Author:  commit.Author,
				Date:    commit.Date,
			}
		}

		return c.OK(resp)
	}
}

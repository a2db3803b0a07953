package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/devconnector/backend/internal/service"
)

// GitHubHandler relays repository listings from GitHub
type GitHubHandler struct {
	github service.IGitHubService
	log    *slog.Logger
}

func NewGitHubHandler(github service.IGitHubService, log *slog.Logger) *GitHubHandler {
	return &GitHubHandler{github: github, log: log}
}

// ListRepos answers with the upstream JSON for :username unchanged
func (h *GitHubHandler) ListRepos(c *gin.Context) {
	repos, err := h.github.ListRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", repos)
}

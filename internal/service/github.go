package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pageza/devconnector/backend/config"
)

const githubUserAgent = "devconnector-backend"

// maxGitHubBody caps how much of an upstream response is read
const maxGitHubBody = 1 << 20

// GitHubService relays a user's most recent public repositories from the GitHub API
type GitHubService struct {
	client   *http.Client
	baseURL  string
	clientID string
	secret   string
}

// Ensure GitHubService implements IGitHubService
var _ IGitHubService = (*GitHubService)(nil)

func NewGitHubService(cfg config.GitHubConfig) *GitHubService {
	return &GitHubService{
		client:   &http.Client{Timeout: cfg.Timeout},
		baseURL:  strings.TrimRight(cfg.APIURL, "/"),
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
	}
}

// ListRepos returns the upstream JSON body unchanged. Any non-200 answer is
// reported as ErrGitHubProfileNotFound.
func (s *GitHubService) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", s.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("User-Agent", githubUserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.clientID != "" && s.secret != "" {
		req.SetBasicAuth(s.clientID, s.secret)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxGitHubBody)); err != nil {
			return nil, fmt.Errorf("failed to read github response: %w", err)
		}
		return nil, ErrGitHubProfileNotFound
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGitHubBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}
	if len(body) > maxGitHubBody {
		return nil, ErrGitHubResponseTooLarge
	}
	return json.RawMessage(body), nil
}

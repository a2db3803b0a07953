package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/devconnector/backend/internal/middleware"
	"github.com/pageza/devconnector/backend/internal/mocks"
	"github.com/pageza/devconnector/backend/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

const (
	testTokenHeader = "x-auth-token"
	testToken       = "valid-token"
)

// testRouter bundles a router wired to mock services
type testRouter struct {
	*gin.Engine
	auth     *mocks.MockAuthService
	tokens   *mocks.MockTokenService
	profiles *mocks.MockProfileService
	github   *mocks.MockGitHubService
	userID   uuid.UUID
}

func setupTestRouter(t *testing.T) *testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tr := &testRouter{
		Engine:   gin.New(),
		auth:     new(mocks.MockAuthService),
		tokens:   new(mocks.MockTokenService),
		profiles: new(mocks.MockProfileService),
		github:   new(mocks.MockGitHubService),
		userID:   uuid.New(),
	}
	tr.tokens.On("Verify", testToken).Return(tr.userID, nil).Maybe()

	tr.Use(middleware.Recovery(testhelpers.Logger()))
	RegisterRoutes(tr.Engine, Dependencies{
		Auth:        tr.auth,
		Tokens:      tr.tokens,
		Profiles:    tr.profiles,
		GitHub:      tr.github,
		TokenHeader: testTokenHeader,
		Logger:      testhelpers.Logger(),
	})

	t.Cleanup(func() {
		tr.auth.AssertExpectations(t)
		tr.profiles.AssertExpectations(t)
		tr.github.AssertExpectations(t)
	})
	return tr
}

// PerformRequest sends body as JSON (when non-nil) and records the response
func PerformRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	return PerformRequestWithToken(r, method, path, body, "")
}

// PerformRequestWithToken is PerformRequest with the raw token header set
func PerformRequestWithToken(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(testTokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorsResponse struct {
	Errors []struct {
		Value    interface{} `json:"value"`
		Msg      string      `json:"msg"`
		Param    string      `json:"param"`
		Location string      `json:"location"`
	} `json:"errors"`
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) errorsResponse {
	t.Helper()
	var resp errorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func errorParams(resp errorsResponse) []string {
	params := make([]string, len(resp.Errors))
	for i, e := range resp.Errors {
		params[i] = e.Param
	}
	return params
}

package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/thassiov/challenge/internal/application/service"
	"github.com/thassiov/challenge/internal/domain/repo"
	"github.com/thassiov/challenge/internal/middleware"
	"github.com/thassiov/challenge/internal/presentation/handlers"
	"github.com/thassiov/challenge/internal/presentation/router"
)

type emptyGitHubService struct{}

func (emptyGitHubService) ListRepositories(ctx context.Context, username repo.Username, accessToken string) ([]repo.RawRepository, error) {
	return nil, nil
}

func (emptyGitHubService) ListBranches(ctx context.Context, username repo.Username, repository repo.RepositoryName, accessToken string) ([]repo.RawBranch, error) {
	return nil, nil
}

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	svc := service.NewRepositoryService(emptyGitHubService{}, logger, 0)

	return router.New(router.Handlers{
		Health:     handlers.NewHealthHandler(),
		Repository: handlers.NewRepositoryHandler(svc, logger),
	}, logger, false)
}

func TestRouter(t *testing.T) {
	r := newRouter(t)

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("get-repos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-repos?username=octocat", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("keeps incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/get-repos", nil)
		req.Header.Set("Origin", "http://frontend.local")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

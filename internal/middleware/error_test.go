package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/thassiov/challenge/internal/domain/repo"
	"github.com/thassiov/challenge/internal/middleware"
)

func TestUnwrapErrorChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "foreign error",
			err:  errors.New("boom"),
			want: "boom",
		},
		{
			name: "single error without details",
			err:  repo.NewError(repo.KindService, "Could not get user repos", nil, nil),
			want: "ServiceError: Could not get user repos",
		},
		{
			name: "nested chain",
			err: repo.NewError(repo.KindAPI, "request failed", map[string]string{"username": "octocat"},
				repo.NewError(repo.KindHTTPRequest, "Cannot make GET request", map[string]string{"data": "https://api.github.com/users/octocat/repos"},
					errors.New("dial tcp: connection refused"))),
			want: "ApiError: request failed: {\"username\":\"octocat\"}\n" +
				"HttpRequestError: Cannot make GET request: {\"data\":\"https://api.github.com/users/octocat/repos\"}\n" +
				"dial tcp: connection refused",
		},
		{
			name: "wrapped with fmt",
			err:  fmt.Errorf("outer: %w", repo.ErrInvalidUsername("")),
			want: "ValidationError: Username provided is not valid: {\"data\":\"\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.UnwrapErrorChain(tt.err))
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		verbose  bool
		err      error
		wantBody string
	}{
		{"generic for domain errors", false, repo.NewError(repo.KindAPI, "failed", nil, nil), "Something went wrong"},
		{"verbose for domain errors", true, repo.NewError(repo.KindAPI, "failed", nil, nil), "ApiError: failed"},
		{"generic for foreign errors even when verbose", true, errors.New("boom"), "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ErrorHandler(zaptest.NewLogger(t), tt.verbose))
			r.GET("/", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}

	t.Run("leaves written responses alone", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler(zaptest.NewLogger(t), false))
		r.GET("/", func(c *gin.Context) {
			c.String(http.StatusTeapot, "short and stout")
			_ = c.Error(errors.New("late"))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "short and stout", w.Body.String())
	})
}

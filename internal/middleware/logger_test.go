package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/thassiov/challenge/internal/middleware"
)

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		status    int
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{"success", http.StatusOK, zapcore.InfoLevel, "Request served"},
		{"client error", http.StatusBadRequest, zapcore.WarnLevel, "Request rejected"},
		{"server error", http.StatusInternalServerError, zapcore.ErrorLevel, "Request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			r := gin.New()
			r.Use(middleware.RequestID())
			r.Use(middleware.Logger(zap.New(core)))
			r.GET("/get-repos", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/get-repos?username=octocat", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-42")
			r.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, tt.wantMsg, entries[0].Message)

			fields := entries[0].ContextMap()
			assert.Equal(t, "/get-repos", fields["path"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, "req-42", fields["requestID"])
		})
	}
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thassiov/challenge/internal/application/dto"
	"github.com/thassiov/challenge/internal/application/service"
	"github.com/thassiov/challenge/internal/domain/repo"
	"github.com/thassiov/challenge/internal/middleware"
)

const (
	msgAcceptHeader   = "The request must come with the header { accept: application/json }"
	msgInvalidQuery   = "Cannot serve request: the given querystring is not in a valid format"
	msgProcessingFail = "An error occurred during the processing of the request"
)

// RepositoryHandler handles repository-related HTTP requests
type RepositoryHandler struct {
	repositoryService *service.RepositoryService
	logger            *zap.Logger
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService *service.RepositoryService, logger *zap.Logger) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
		logger:            logger,
	}
}

// GetRepos handles GET /get-repos
// @Summary List a user's repositories and branches
// @Description Returns every repository owned by the GitHub user, each with all of its branches
// @Tags Repositories
// @Accept json
// @Produce json
// @Param username query string true "GitHub username"
// @Param token query string false "GitHub access token, used when no Authorization header is sent"
// @Param Authorization header string false "Bearer token forwarded to GitHub"
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /get-repos [get]
func (h *RepositoryHandler) GetRepos(c *gin.Context) {
	if c.GetHeader("Accept") != "application/json" {
		c.String(http.StatusBadRequest, msgAcceptHeader)
		return
	}

	var query dto.GetReposQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Error(msgInvalidQuery, zap.Error(err))
		c.String(http.StatusBadRequest, msgInvalidQuery)
		return
	}

	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		token = query.Token
	}

	repos, err := h.repositoryService.ListUserRepositories(c.Request.Context(), query.Username, token)
	if err != nil {
		h.logger.Error(msgProcessingFail, zap.String("username", query.Username), zap.Error(err))
		_ = c.Error(repo.NewError(repo.KindAPI, msgProcessingFail, map[string]string{
			"username":  query.Username,
			"requestId": middleware.GetRequestID(c),
		}, err))
		return
	}

	c.JSON(http.StatusOK, dto.NewRepositoryListResponse(repos))
}

// bearerToken returns the credential of an "Authorization: <scheme> <credential>" header
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

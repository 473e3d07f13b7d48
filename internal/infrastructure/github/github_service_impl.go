package github

import (
	"context"

	"github.com/thassiov/challenge/internal/domain/repo"
	"github.com/thassiov/challenge/internal/github"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client) repo.GitHubService {
	return &GitHubServiceImpl{client: client}
}

// ListRepositories fetches all repositories owned by a user from GitHub
func (g *GitHubServiceImpl) ListRepositories(ctx context.Context, username repo.Username, accessToken string) ([]repo.RawRepository, error) {
	return g.client.ListRepositories(ctx, username.String(), accessToken, 0)
}

// ListBranches fetches all branches of a repository from GitHub
func (g *GitHubServiceImpl) ListBranches(ctx context.Context, username repo.Username, repository repo.RepositoryName, accessToken string) ([]repo.RawBranch, error) {
	return g.client.ListBranches(ctx, username.String(), repository.String(), accessToken, 0)
}

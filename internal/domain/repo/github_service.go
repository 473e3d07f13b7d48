package repo

import (
	"context"
)

// GitHubService is a domain service interface for listing repositories and branches on GitHub.
// Implementations return every page of the listing.
type GitHubService interface {
	// ListRepositories fetches all repositories owned by username
	ListRepositories(ctx context.Context, username Username, accessToken string) ([]RawRepository, error)

	// ListBranches fetches all branches of username/repository
	ListBranches(ctx context.Context, username Username, repository RepositoryName, accessToken string) ([]RawBranch, error)
}

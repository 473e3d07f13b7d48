package dto

import "github.com/thassiov/challenge/internal/domain/repo"

// GetReposQuery represents the query string of GET /get-repos
type GetReposQuery struct {
	Username string `form:"username" binding:"required"`
	Token    string `form:"token"` // Optional, the Authorization header takes precedence
}

// BranchResponse represents a branch in API responses
type BranchResponse struct {
	Name          string `json:"name"`
	LastCommitSHA string `json:"lastCommitSha"`
}

// RepositoryResponse represents a repository and its branches in API responses
type RepositoryResponse struct {
	Owner          string           `json:"owner"`
	RepositoryName string           `json:"repositoryName"`
	Branches       []BranchResponse `json:"branches"`
}

// RepositoryListResponse wraps the repositories of a user
type RepositoryListResponse struct {
	Data []RepositoryResponse `json:"data"`
}

// NewRepositoryListResponse converts domain repositories to the response envelope
func NewRepositoryListResponse(repos []repo.UserRepository) RepositoryListResponse {
	data := make([]RepositoryResponse, len(repos))
	for i, r := range repos {
		branches := make([]BranchResponse, len(r.Branches))
		for j, b := range r.Branches {
			branches[j] = BranchResponse{
				Name:          b.Name,
				LastCommitSHA: b.LastCommitSHA,
			}
		}
		data[i] = RepositoryResponse{
			Owner:          r.Owner,
			RepositoryName: r.RepositoryName,
			Branches:       branches,
		}
	}
	return RepositoryListResponse{Data: data}
}

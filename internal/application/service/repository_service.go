package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thassiov/challenge/internal/domain/repo"
)

// RepositoryService handles repository-related use cases
type RepositoryService struct {
	githubService  repo.GitHubService
	logger         *zap.Logger
	maxConcurrency int
}

// NewRepositoryService creates a new repository service.
// maxConcurrency bounds the branch fetches in flight; zero or less means no bound.
func NewRepositoryService(githubService repo.GitHubService, logger *zap.Logger, maxConcurrency int) *RepositoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryService{
		githubService:  githubService,
		logger:         logger,
		maxConcurrency: maxConcurrency,
	}
}

// ListUserRepositories returns every repository owned by username together with all of its branches.
// The result keeps the order of the upstream listing. Any upstream failure fails the whole call.
func (s *RepositoryService) ListUserRepositories(ctx context.Context, username, accessToken string) ([]repo.UserRepository, error) {
	user, err := repo.NewUsername(username)
	if err != nil {
		s.logger.Error("Username provided is not valid", zap.String("username", username))
		return nil, err
	}

	repos, err := s.githubService.ListRepositories(ctx, user, accessToken)
	if err != nil {
		return nil, s.fail(user, err)
	}

	if len(repos) == 0 {
		return []repo.UserRepository{}, nil
	}

	result := make([]repo.UserRepository, len(repos))

	g, gctx := errgroup.WithContext(ctx)
	if s.maxConcurrency > 0 {
		g.SetLimit(s.maxConcurrency)
	}

	for i, raw := range repos {
		g.Go(func() error {
			branches, err := s.listBranches(gctx, user, raw.Name(), accessToken)
			if err != nil {
				return err
			}
			result[i] = repo.NewUserRepository(raw, branches)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, s.fail(user, err)
	}

	s.logger.Debug("Listed user repositories", zap.String("username", username), zap.Int("count", len(result)))
	return result, nil
}

func (s *RepositoryService) listBranches(ctx context.Context, user repo.Username, name, accessToken string) ([]repo.RawBranch, error) {
	repository, err := repo.NewRepositoryName(name)
	if err != nil {
		return nil, err
	}
	return s.githubService.ListBranches(ctx, user, repository, accessToken)
}

func (s *RepositoryService) fail(user repo.Username, err error) error {
	s.logger.Error("Could not get user repos", zap.String("username", user.String()), zap.Error(err))
	return repo.ErrUserRepositories(user.String(), err)
}

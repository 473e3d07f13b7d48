package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/thassiov/challenge/internal/domain/repo"
)

const (
	DefaultBaseURL    = "https://api.github.com"
	DefaultAPIVersion = "2022-11-28"
	DefaultPageSize   = 30
	DefaultTimeout    = 30 * time.Second
	DefaultMaxPages   = 1000

	acceptHeader = "application/vnd.github+json"
	maxErrorBody = 512
)

// Client handles GitHub API interactions.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	apiVersion      string
	pageSize        int
	includeLastPage bool
	maxPages        int
	logger          *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another GitHub-compatible API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithAPIVersion sets the X-GitHub-Api-Version header value
func WithAPIVersion(version string) Option {
	return func(c *Client) { c.apiVersion = version }
}

// WithPageSize sets the per_page value used when a call passes pageSize <= 0
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithTimeout sets the timeout of the underlying HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithIncludeLastPage makes pagination fetch pages 2..P instead of 2..P-1,
// where P is the page number advertised by the rel="last" link.
func WithIncludeLastPage(include bool) Option {
	return func(c *Client) { c.includeLastPage = include }
}

// WithMaxPages caps the page number a listing may advertise in its rel="last" link
func WithMaxPages(pages int) Option {
	return func(c *Client) {
		if pages > 0 {
			c.maxPages = pages
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new GitHub API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		pageSize:   DefaultPageSize,
		maxPages:   DefaultMaxPages,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRepositories fetches every repository owned by username, walking all pages
func (c *Client) ListRepositories(ctx context.Context, username, accessToken string, pageSize int) ([]repo.RawRepository, error) {
	if _, err := repo.NewUsername(username); err != nil {
		c.logger.Error("Username provided is not valid", zap.String("username", username))
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(username))
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.perPage(pageSize)))
	query.Set("type", "owner")

	repos, err := listAll[repo.RawRepository](ctx, c, endpoint, query, accessToken)
	if err != nil {
		c.logger.Error("Could not retrieve the user repos", zap.String("username", username), zap.Error(err))
		return nil, repo.NewError(repo.KindHTTPRequest, "Could not retrieve the user repos",
			map[string]string{"data": username}, err)
	}

	return repos, nil
}

// ListBranches fetches every branch of username/repository, walking all pages
func (c *Client) ListBranches(ctx context.Context, username, repository, accessToken string, pageSize int) ([]repo.RawBranch, error) {
	if _, err := repo.NewUsername(username); err != nil {
		c.logger.Error("Username provided is not valid", zap.String("username", username))
		return nil, err
	}
	if _, err := repo.NewRepositoryName(repository); err != nil {
		c.logger.Error("Repository provided is not valid", zap.String("repository", repository))
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/branches", c.baseURL, url.PathEscape(username), url.PathEscape(repository))
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.perPage(pageSize)))

	branches, err := listAll[repo.RawBranch](ctx, c, endpoint, query, accessToken)
	if err != nil {
		c.logger.Error("Could not retrieve the repos branches",
			zap.String("username", username), zap.String("repository", repository), zap.Error(err))
		return nil, repo.NewError(repo.KindHTTPRequest, "Could not retrieve the repos branches",
			map[string]string{"username": username, "repository": repository}, err)
	}

	return branches, nil
}

func (c *Client) perPage(pageSize int) int {
	if pageSize > 0 {
		return pageSize
	}
	return c.pageSize
}

// listAll fetches the first page, reads the page count from its link header
// and then requests the remaining pages in order.
func listAll[T any](ctx context.Context, c *Client, endpoint string, query url.Values, accessToken string) ([]T, error) {
	records, header, err := getPage[T](ctx, c, endpoint+"?"+query.Encode(), accessToken)
	if err != nil {
		return nil, err
	}

	last := LastPage(header.Get("Link"))
	if last > c.maxPages {
		return nil, repo.NewError(repo.KindHTTPRequest,
			fmt.Sprintf("Listing advertises %d pages, more than the limit of %d", last, c.maxPages),
			map[string]string{"data": endpoint}, nil)
	}
	end := last - 1
	if c.includeLastPage {
		end = last
	}

	for page := 2; page <= end; page++ {
		query.Set("page", strconv.Itoa(page))
		pageRecords, _, err := getPage[T](ctx, c, endpoint+"?"+query.Encode(), accessToken)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
	}

	if records == nil {
		records = []T{}
	}
	return records, nil
}

func getPage[T any](ctx context.Context, c *Client, rawURL, accessToken string) ([]T, http.Header, error) {
	c.logger.Debug("Fetching page", zap.String("url", rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, repo.NewError(repo.KindHTTPRequest, "Cannot make GET request",
			map[string]string{"data": rawURL}, err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", c.apiVersion)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to make GET request", zap.String("url", rawURL), zap.Error(err))
		return nil, nil, repo.NewError(repo.KindHTTPRequest, "Cannot make GET request",
			map[string]string{"data": rawURL}, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Failed to make GET request",
			zap.String("url", rawURL), zap.Int("statusCode", resp.StatusCode))
		return nil, nil, repo.NewError(repo.KindHTTPRequest,
			fmt.Sprintf("Cannot make GET request: statusCode: %d", resp.StatusCode),
			map[string]string{"data": rawURL, "body": string(body)}, nil)
	}

	var records []T
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, nil, repo.NewError(repo.KindParsing, "Cannot decode response body",
			map[string]string{"data": rawURL}, err)
	}

	return records, resp.Header, nil
}

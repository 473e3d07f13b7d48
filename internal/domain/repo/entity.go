package repo

// RawRepository is a repository record exactly as returned by the GitHub API
type RawRepository map[string]any

// Name returns the repository "name" field, or "" when it is missing
func (r RawRepository) Name() string {
	return stringField(r, "name")
}

// OwnerLogin returns the "owner.login" field, or "" when it is missing
func (r RawRepository) OwnerLogin() string {
	owner, ok := r["owner"].(map[string]any)
	if !ok {
		return ""
	}
	return stringField(owner, "login")
}

// RawBranch is a branch record exactly as returned by the GitHub API
type RawBranch map[string]any

// Name returns the branch "name" field
func (b RawBranch) Name() string {
	return stringField(b, "name")
}

// CommitSHA returns the "commit.sha" field
func (b RawBranch) CommitSHA() string {
	commit, ok := b["commit"].(map[string]any)
	if !ok {
		return ""
	}
	return stringField(commit, "sha")
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Branch is the normalized view of a branch
type Branch struct {
	Name          string
	LastCommitSHA string
}

// NewBranch normalizes a raw branch record
func NewBranch(raw RawBranch) Branch {
	return Branch{
		Name:          raw.Name(),
		LastCommitSHA: raw.CommitSHA(),
	}
}

// UserRepository is the normalized view of a repository and its branches
type UserRepository struct {
	Owner          string
	RepositoryName string
	Branches       []Branch
}

// NewUserRepository normalizes a raw repository and its raw branches.
// Branch order is preserved and Branches is never nil.
func NewUserRepository(raw RawRepository, rawBranches []RawBranch) UserRepository {
	branches := make([]Branch, len(rawBranches))
	for i, b := range rawBranches {
		branches[i] = NewBranch(b)
	}

	return UserRepository{
		Owner:          raw.OwnerLogin(),
		RepositoryName: raw.Name(),
		Branches:       branches,
	}
}

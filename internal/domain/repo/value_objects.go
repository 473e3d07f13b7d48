package repo

import "strings"

// Username is a value object representing a GitHub account login
type Username struct {
	value string
}

// NewUsername creates a new Username with validation
func NewUsername(username string) (Username, error) {
	if strings.TrimSpace(username) == "" {
		return Username{}, ErrInvalidUsername(username)
	}
	return Username{value: username}, nil
}

func (u Username) String() string {
	return u.value
}

func (u Username) Equals(other Username) bool {
	return u.value == other.value
}

// RepositoryName is a value object representing a repository name
type RepositoryName struct {
	value string
}

// NewRepositoryName creates a new RepositoryName with validation
func NewRepositoryName(name string) (RepositoryName, error) {
	if strings.TrimSpace(name) == "" {
		return RepositoryName{}, ErrInvalidRepositoryName(name)
	}
	return RepositoryName{value: name}, nil
}

func (n RepositoryName) String() string {
	return n.value
}

func (n RepositoryName) Equals(other RepositoryName) bool {
	return n.value == other.value
}

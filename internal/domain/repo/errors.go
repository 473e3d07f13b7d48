package repo

import (
	"errors"
	"fmt"
)

// Kind classifies an Error
type Kind string

const (
	KindValidation  Kind = "ValidationError"
	KindHTTPRequest Kind = "HttpRequestError"
	KindService     Kind = "ServiceError"
	KindAPI         Kind = "ApiError"
	KindParsing     Kind = "ParsingError"
	KindConfig      Kind = "ConfigError"
)

// Error is the error type shared by every layer of the service.
// Details carries structured context (identifiers, URLs) and Err the wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error of the given kind
func NewError(kind Kind, message string, details map[string]string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Details: details,
		Err:     cause,
	}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// Predefined errors

func ErrInvalidUsername(username string) *Error {
	return NewError(KindValidation, "Username provided is not valid", map[string]string{"data": username}, nil)
}

func ErrInvalidRepositoryName(name string) *Error {
	return NewError(KindValidation, "Repository provided is not valid", map[string]string{"data": name}, nil)
}

func ErrUserRepositories(username string, cause error) *Error {
	return NewError(KindService, "Could not get user repos", map[string]string{"data": username}, cause)
}

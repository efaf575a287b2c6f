// ABOUTME: Sentinel errors for catalog and user directory operations
// ABOUTME: Handlers map these onto HTTP status codes

package store

import "errors"

var (
	// ErrBookNotFound indicates the requested ISBN is not in the catalog.
	ErrBookNotFound = errors.New("book not found")

	// ErrReviewNotFound indicates the book is absent or the user has no
	// review on it. The two cases are deliberately indistinguishable.
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateUser indicates the username is already registered.
	ErrDuplicateUser = errors.New("username already exists")
)

package services

import (
	"errors"
	"fmt"
)

// Service errors, ordered by the priority in which they are surfaced to
// the user: validation problems first, then duplicates, then auth, then
// generic store failures. Every error is terminal for the attempt; the
// API never retries on its own.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("product belongs to another user")
	ErrDuplicateReview = errors.New("product already reviewed by this user")
	ErrUnauthenticated = errors.New("authentication required")
	ErrStoreFailure    = errors.New("storage operation failed")
)

func wrapStore(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}

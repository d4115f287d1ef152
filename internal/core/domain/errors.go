package domain

import "errors"

// Domain errors represent argument-resolution failures.
// These are distinct from infrastructure errors such as an
// unreadable file, which reach the caller unchanged.
var (
	// ErrMissingQuery indicates no query string was supplied.
	ErrMissingQuery = errors.New("didn't get a query string")

	// ErrMissingFilePath indicates no file path was supplied.
	ErrMissingFilePath = errors.New("didn't get a file path")
)

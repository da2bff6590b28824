package service

import "errors"

var (
	// ErrInvalidInput covers malformed or out-of-bounds request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoActiveSession means a word was recorded without an open session.
	ErrNoActiveSession = errors.New("no active japa session")

	// ErrUnauthorized means credentials did not check out.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyRegistered guards duplicate bhaktgan emails.
	ErrAlreadyRegistered = errors.New("email already registered")

	// ErrNotFound marks a missing resource.
	ErrNotFound = errors.New("not found")
)

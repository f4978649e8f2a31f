package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist locally.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates a create collided with an existing task id.
	ErrDuplicate = errors.New("record already exists")
)

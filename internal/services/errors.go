package services

import "errors"

var (
	// ErrIncompleteDraft is returned when a required draft field is empty; state is untouched
	ErrIncompleteDraft = errors.New("draft is missing required fields")
	// ErrNotFound is returned when no entity matches the given id
	ErrNotFound = errors.New("not found")
	// ErrEmptyText is returned when a chat message or comment is empty
	ErrEmptyText = errors.New("text must not be empty")
)

package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrConfiguration is returned when input parameters are invalid
	// (non-positive target count, chunk size not larger than overlap).
	// It is fatal: callers must not retry.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrEmptyDocument is returned when document text is empty.
	ErrEmptyDocument = errors.New("document text cannot be empty")

	// ErrNoDocument is returned when an operation requires a loaded
	// document and none is present.
	ErrNoDocument = errors.New("no document loaded")

	// ErrEmptyQuestion is returned when a pair's question is empty after trimming.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrEmptyAnswer is returned when a pair's answer is empty after trimming.
	ErrEmptyAnswer = errors.New("answer cannot be empty")
)

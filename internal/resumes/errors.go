package resumes

import "errors"

var (
	// ErrNotFound indicates no analysis exists for the resume.
	ErrNotFound = errors.New("analysis not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates access is not allowed.
	ErrForbidden = errors.New("forbidden")
)

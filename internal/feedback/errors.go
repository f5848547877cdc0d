package feedback

import "errors"

var (
	// ErrNotFound indicates feedback was not found.
	ErrNotFound = errors.New("not found")

	// ErrInterviewNotFound indicates the referenced interview does not exist.
	ErrInterviewNotFound = errors.New("interview not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates access is not allowed.
	ErrForbidden = errors.New("forbidden")
)

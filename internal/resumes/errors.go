package resumes

import "errors"

var (
	// ErrNotFound indicates a resume does not exist or is owned by another user.
	// The two cases are deliberately indistinguishable to callers.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

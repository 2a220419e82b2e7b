package cli

import "errors"

// Common CLI errors
var (
	ErrInvalidCount = errors.New("count must be at least 1")
	ErrInvalidFlags = errors.New("invalid flags")
	ErrPlanInvalid  = errors.New("plan is invalid")
)

package health

import "errors"

var (
	// ErrCheckFailed is reported when one or more checks fail.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout marks a check that ran past the readiness deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)

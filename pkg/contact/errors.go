package contact

import "errors"

var (
	// ErrMissingFields indicates at least one of name, email, or message is empty.
	ErrMissingFields = errors.New("contact: all fields are required")

	// ErrInvalidEmail indicates the sender address is not a valid email address.
	ErrInvalidEmail = errors.New("contact: invalid sender email")

	// ErrUnknown indicates an unexpected failure while sending.
	ErrUnknown = errors.New("contact: unexpected failure")

	// ErrMalformedRequest indicates the HTTP body could not be decoded.
	ErrMalformedRequest = errors.New("contact: malformed request body")
)

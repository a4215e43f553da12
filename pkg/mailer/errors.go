package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no sender address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no text body was provided.
	ErrNoContent = errors.New("email must have text content")

	// ErrMissingConfig indicates the mail credentials are not fully configured.
	ErrMissingConfig = errors.New("mail credentials are not configured")

	// ErrAuthFailed indicates the relay rejected the account credentials.
	ErrAuthFailed = errors.New("mail relay rejected authentication")

	// ErrTransportFailed indicates a connection, TLS, or protocol fault.
	ErrTransportFailed = errors.New("mail transport failed")
)

package contact

import (
	"fmt"

	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

// Kind classifies how a submission was resolved.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindMissingFields
	KindInvalidEmail
	KindMissingConfig
	KindAuthFailed
	KindTransportFailed
	KindUnknown
)

var kindNames = [...]string{
	KindSuccess:         "success",
	KindMissingFields:   "missing_fields",
	KindInvalidEmail:    "invalid_email",
	KindMissingConfig:   "missing_config",
	KindAuthFailed:      "auth_failed",
	KindTransportFailed: "transport_failed",
	KindUnknown:         "unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsInputError reports whether the submitter can fix the failure by editing the form.
func (k Kind) IsInputError() bool {
	return k == KindMissingFields || k == KindInvalidEmail
}

// State is a step of the submission pipeline.
type State uint8

const (
	StateIdle State = iota
	StateValidating
	StateSending
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSending:
		return "sending"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("state(%d)", s)
	}
}

// Outcome is the caller-visible result of a submission.
// Failures are values; Submit never returns an error or panics.
type Outcome struct {
	SubmissionID string // Correlates the outcome with log records
	Diagnostic   string // Underlying failure text, empty on success
	Kind         Kind
}

// OK reports whether the message was handed to the relay.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// Err returns the sentinel error matching the outcome, or nil on success.
func (o Outcome) Err() error {
	var sentinel error
	switch o.Kind {
	case KindSuccess:
		return nil
	case KindMissingFields:
		sentinel = ErrMissingFields
	case KindInvalidEmail:
		sentinel = ErrInvalidEmail
	case KindMissingConfig:
		sentinel = mailer.ErrMissingConfig
	case KindAuthFailed:
		sentinel = mailer.ErrAuthFailed
	case KindTransportFailed:
		sentinel = mailer.ErrTransportFailed
	default:
		sentinel = ErrUnknown
	}

	if o.Diagnostic == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, o.Diagnostic)
}

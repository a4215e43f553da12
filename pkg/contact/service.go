package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tiagofholanda/portfolio-contact/pkg/logger"
	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

// HeaderSubmissionID carries the submission ID in every relayed message.
const HeaderSubmissionID = "X-Contact-Submission"

// Service runs the contact pipeline: field check, address validation,
// credential resolution, composition, and relay.
type Service struct {
	sender       mailer.Sender
	validator    EmailValidator
	environ      func() map[string]string
	newID        func() string
	onTransition func(from, to State)
	logger       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithValidator replaces the default go-playground email validator.
func WithValidator(v EmailValidator) ServiceOption {
	return func(s *Service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithEnvironment sets the source the mail credentials are read from on each send.
// Defaults to the process environment.
func WithEnvironment(fn func() map[string]string) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.environ = fn
		}
	}
}

// WithLogger sets the logger for pipeline events.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the submission ID generator.
func WithIDGenerator(fn func() string) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithTransitionHook registers a callback invoked on every state change.
func WithTransitionHook(fn func(from, to State)) ServiceOption {
	return func(s *Service) {
		s.onTransition = fn
	}
}

// NewService creates a contact pipeline that relays through sender.
func NewService(sender mailer.Sender, opts ...ServiceOption) *Service {
	s := &Service{
		sender:    sender,
		validator: NewEmailValidator(),
		environ:   mailer.ProcessEnvironment,
		newID:     uuid.NewString,
		logger:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run tracks the pipeline state for a single submission.
type run struct {
	svc     *Service
	log     *slog.Logger
	outcome Outcome
	state   State
}

func (r *run) move(next State) {
	if r.svc.onTransition != nil {
		r.svc.onTransition(r.state, next)
	}
	r.state = next
}

func (r *run) resolve(kind Kind, diagnostic string) Outcome {
	r.move(StateResolved)
	r.outcome.Kind = kind
	r.outcome.Diagnostic = diagnostic
	return r.outcome
}

// Submit runs one submission to completion. It never retries and never panics;
// every failure is reported through the returned Outcome.
func (s *Service) Submit(ctx context.Context, req Request) Outcome {
	id := s.newID()
	r := &run{
		svc:     s,
		log:     s.logger.With(slog.String("submission_id", id)),
		outcome: Outcome{SubmissionID: id},
		state:   StateIdle,
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		r.log.InfoContext(ctx, "contact submission rejected",
			slog.String("reason", KindMissingFields.String()),
			slog.Any("fields", missing),
		)
		return r.resolve(KindMissingFields, "missing "+strings.Join(missing, ", "))
	}

	r.move(StateValidating)
	if !s.validator.IsValid(req.Email) {
		r.log.InfoContext(ctx, "contact submission rejected",
			slog.String("reason", KindInvalidEmail.String()),
		)
		return r.resolve(KindInvalidEmail, "invalid sender address")
	}

	r.move(StateSending)
	creds, err := mailer.ResolveCredentials(s.environ())
	if err != nil {
		r.log.ErrorContext(ctx, "mail credentials are not configured",
			slog.String("fault", "config"),
			slog.String("error", err.Error()),
		)
		return r.resolve(KindMissingConfig, err.Error())
	}

	email := Compose(req, creds)
	email.Headers = map[string]string{HeaderSubmissionID: id}

	if err := s.send(ctx, email, creds); err != nil {
		kind, fault := KindUnknown, "unknown"
		switch {
		case mailer.IsAuthFailure(err):
			kind, fault = KindAuthFailed, "auth"
		case mailer.IsTransportFailure(err):
			kind, fault = KindTransportFailed, "transport"
		}
		r.log.ErrorContext(ctx, "failed to relay contact message",
			slog.String("fault", fault),
			slog.String("error", err.Error()),
		)
		return r.resolve(kind, err.Error())
	}

	r.log.InfoContext(ctx, "contact message relayed", slog.String("from", req.Email))
	return r.resolve(KindSuccess, "")
}

// send shields the pipeline from panics raised by the transport.
func (s *Service) send(ctx context.Context, email *mailer.Email, creds mailer.Credentials) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic while sending: %v", p)
		}
	}()
	return s.sender.Send(ctx, email, creds)
}

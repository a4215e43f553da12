package mailer_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

func validEmail() *mailer.Email {
	return &mailer.Email{
		From:    "relay@example.com",
		To:      []string{"owner@example.com"},
		Subject: "Hello",
		Text:    "Body",
	}
}

func TestEmail_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*mailer.Email)
		want   error
	}{
		{name: "valid", modify: func(*mailer.Email) {}},
		{name: "no recipient", modify: func(e *mailer.Email) { e.To = nil }, want: mailer.ErrNoRecipient},
		{name: "no sender", modify: func(e *mailer.Email) { e.From = "" }, want: mailer.ErrNoSender},
		{name: "no subject", modify: func(e *mailer.Email) { e.Subject = "" }, want: mailer.ErrNoSubject},
		{name: "no content", modify: func(e *mailer.Email) { e.Text = "" }, want: mailer.ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email := validEmail()
			tt.modify(email)

			err := email.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEmail_Validate_Nil(t *testing.T) {
	t.Parallel()

	var email *mailer.Email
	require.ErrorIs(t, email.Validate(), mailer.ErrNoRecipient)
}

func TestFailureClassification(t *testing.T) {
	t.Parallel()

	auth := fmt.Errorf("send: %w", errors.Join(mailer.ErrAuthFailed, errors.New("535 5.7.8")))
	transport := errors.Join(mailer.ErrTransportFailed, errors.New("connection reset"))
	other := errors.New("boom")

	require.True(t, mailer.IsAuthFailure(auth))
	require.False(t, mailer.IsTransportFailure(auth))

	require.True(t, mailer.IsTransportFailure(transport))
	require.False(t, mailer.IsAuthFailure(transport))

	require.False(t, mailer.IsAuthFailure(other))
	require.False(t, mailer.IsTransportFailure(other))
	require.False(t, mailer.IsAuthFailure(nil))
}

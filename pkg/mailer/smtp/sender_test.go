package smtp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/quotedprintable"
	"net"
	netmail "net/mail"
	netsmtp "net/smtp"
	"net/textproto"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

// MockClient is a mock implementation of the Client interface.
type MockClient struct {
	mock.Mock
	data bytes.Buffer
}

func (m *MockClient) Auth(a netsmtp.Auth) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockClient) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *MockClient) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *MockClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return nopWriteCloser{&m.data}, nil
}

func (m *MockClient) Quit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func testEmail() *mailer.Email {
	return &mailer.Email{
		To:      []string{"owner@example.com"},
		From:    "relay@example.com",
		ReplyTo: "ana@example.com",
		Subject: "Contato do Portfólio - Ana",
		Text:    "Nome: Ana\nE-mail: ana@example.com\n\nMensagem:\nOlá!",
	}
}

func testCreds() mailer.Credentials {
	return mailer.Credentials{
		Destination: "owner@example.com",
		Identity:    "relay@example.com",
		Secret:      "app-password",
	}
}

func newTestSender(client Client, dialErr error) *Sender {
	return New(Config{Host: "smtp.example.com", Port: 465}, WithDialer(func(context.Context, Config) (Client, error) {
		if dialErr != nil {
			return nil, dialErr
		}
		return client, nil
	}))
}

func TestSender_Send_Success(t *testing.T) {
	t.Parallel()

	client := &MockClient{}
	client.On("Auth", mock.Anything).Return(nil).Once()
	client.On("Mail", "relay@example.com").Return(nil).Once()
	client.On("Rcpt", "owner@example.com").Return(nil).Once()
	client.On("Data").Return(nil).Once()
	client.On("Quit").Return(nil).Once()
	client.On("Close").Return(nil).Once()

	err := newTestSender(client, nil).Send(context.Background(), testEmail(), testCreds())

	require.NoError(t, err)
	client.AssertExpectations(t)
	client.AssertNumberOfCalls(t, "Close", 1)

	msg, err := netmail.ReadMessage(bytes.NewReader(client.data.Bytes()))
	require.NoError(t, err)

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	require.Equal(t, "Contato do Portfólio - Ana", subject)
	require.Equal(t, "relay@example.com", msg.Header.Get("From"))
	require.Equal(t, "owner@example.com", msg.Header.Get("To"))
	require.Equal(t, "ana@example.com", msg.Header.Get("Reply-To"))
	require.Contains(t, msg.Header.Get("Content-Type"), "text/plain")

	var body io.Reader = msg.Body
	if msg.Header.Get("Content-Transfer-Encoding") == "quoted-printable" {
		body = quotedprintable.NewReader(msg.Body)
	}
	text, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Contains(t, string(text), "Nome: Ana")
	require.Contains(t, string(text), "Mensagem:")
	require.Contains(t, string(text), "Olá!")
}

func TestSender_Send_AuthRejected(t *testing.T) {
	t.Parallel()

	client := &MockClient{}
	client.On("Auth", mock.Anything).
		Return(&textproto.Error{Code: 535, Msg: "5.7.8 Username and Password not accepted"}).Once()
	client.On("Close").Return(nil).Once()

	err := newTestSender(client, nil).Send(context.Background(), testEmail(), testCreds())

	require.ErrorIs(t, err, mailer.ErrAuthFailed)
	require.NotErrorIs(t, err, mailer.ErrTransportFailed)
	require.Contains(t, err.Error(), "Username and Password not accepted")
	client.AssertNumberOfCalls(t, "Close", 1)
	client.AssertNotCalled(t, "Mail", mock.Anything)
	client.AssertNotCalled(t, "Quit")
}

func TestSender_Send_DialFailure(t *testing.T) {
	t.Parallel()

	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	err := newTestSender(nil, dialErr).Send(context.Background(), testEmail(), testCreds())

	require.ErrorIs(t, err, mailer.ErrTransportFailed)
	require.Contains(t, err.Error(), "connection refused")
}

func TestSender_Send_ProtocolFailuresCloseOnce(t *testing.T) {
	t.Parallel()

	rejected := &textproto.Error{Code: 550, Msg: "5.1.1 mailbox unavailable"}

	tests := []struct {
		name  string
		setup func(c *MockClient)
	}{
		{
			name: "mail from rejected",
			setup: func(c *MockClient) {
				c.On("Mail", mock.Anything).Return(rejected)
			},
		},
		{
			name: "rcpt rejected",
			setup: func(c *MockClient) {
				c.On("Mail", mock.Anything).Return(nil)
				c.On("Rcpt", mock.Anything).Return(rejected)
			},
		},
		{
			name: "connection dropped on data",
			setup: func(c *MockClient) {
				c.On("Mail", mock.Anything).Return(nil)
				c.On("Rcpt", mock.Anything).Return(nil)
				c.On("Data").Return(io.ErrUnexpectedEOF)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &MockClient{}
			client.On("Auth", mock.Anything).Return(nil)
			client.On("Close").Return(nil)
			tt.setup(client)

			err := newTestSender(client, nil).Send(context.Background(), testEmail(), testCreds())

			require.ErrorIs(t, err, mailer.ErrTransportFailed)
			require.NotErrorIs(t, err, mailer.ErrAuthFailed)
			client.AssertNumberOfCalls(t, "Close", 1)
			client.AssertNotCalled(t, "Quit")
		})
	}
}

func TestSender_Send_UnexpectedErrorIsNotClassified(t *testing.T) {
	t.Parallel()

	client := &MockClient{}
	client.On("Auth", mock.Anything).Return(nil)
	client.On("Mail", mock.Anything).Return(errors.New("something odd"))
	client.On("Close").Return(nil)

	err := newTestSender(client, nil).Send(context.Background(), testEmail(), testCreds())

	require.Error(t, err)
	require.NotErrorIs(t, err, mailer.ErrTransportFailed)
	require.NotErrorIs(t, err, mailer.ErrAuthFailed)
	require.Contains(t, err.Error(), "something odd")
	client.AssertNumberOfCalls(t, "Close", 1)
}

func TestSender_Send_PanicStillCloses(t *testing.T) {
	t.Parallel()

	client := &MockClient{}
	client.On("Auth", mock.Anything).Run(func(mock.Arguments) { panic("boom") })
	client.On("Close").Return(nil)

	require.Panics(t, func() {
		_ = newTestSender(client, nil).Send(context.Background(), testEmail(), testCreds())
	})
	client.AssertNumberOfCalls(t, "Close", 1)
}

func TestSender_Send_InvalidEmailSkipsDial(t *testing.T) {
	t.Parallel()

	dialed := false
	s := New(Config{}, WithDialer(func(context.Context, Config) (Client, error) {
		dialed = true
		return nil, errors.New("unreachable")
	}))

	err := s.Send(context.Background(), &mailer.Email{From: "a@example.com", Subject: "s", Text: "t"}, testCreds())

	require.ErrorIs(t, err, mailer.ErrNoRecipient)
	require.False(t, dialed)
}

func TestSender_Send_QuitFailureAfterAcceptance(t *testing.T) {
	t.Parallel()

	client := &MockClient{}
	client.On("Auth", mock.Anything).Return(nil)
	client.On("Mail", mock.Anything).Return(nil)
	client.On("Rcpt", mock.Anything).Return(nil)
	client.On("Data").Return(nil)
	client.On("Quit").Return(io.EOF)
	client.On("Close").Return(nil)

	err := newTestSender(client, nil).Send(context.Background(), testEmail(), testCreds())

	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "Close", 1)
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := Config{}.withDefaults()

	require.Equal(t, "smtp.gmail.com", cfg.Host)
	require.Equal(t, 465, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.True(t, cfg.ImplicitTLS())
	require.Equal(t, "smtp.gmail.com:465", cfg.Address())
}

func TestConfig_StartTLSPort(t *testing.T) {
	t.Parallel()

	cfg := Config{Host: "smtp.gmail.com", Port: 587}.withDefaults()

	require.False(t, cfg.ImplicitTLS())
	require.Equal(t, "smtp.gmail.com:587", cfg.Address())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		transport bool
	}{
		{name: "eof", err: io.EOF, transport: true},
		{name: "deadline", err: context.DeadlineExceeded, transport: true},
		{name: "starttls missing", err: ErrStartTLSUnsupported, transport: true},
		{name: "relay reply", err: &textproto.Error{Code: 421, Msg: "try later"}, transport: true},
		{name: "protocol", err: textproto.ProtocolError("short response"), transport: true},
		{name: "net op", err: &net.OpError{Op: "read", Err: errors.New("reset")}, transport: true},
		{name: "plain", err: errors.New("plain"), transport: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := classify("step", tt.err)

			require.ErrorIs(t, err, tt.err)
			require.Equal(t, tt.transport, errors.Is(err, mailer.ErrTransportFailed))
		})
	}
}

func TestAuthError_NonReplyFallsBackToClassify(t *testing.T) {
	t.Parallel()

	err := authError(io.EOF)

	require.ErrorIs(t, err, mailer.ErrTransportFailed)
	require.NotErrorIs(t, err, mailer.ErrAuthFailed)
}

func TestAuthError_ReplyCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code      int
		auth      bool
		transport bool
	}{
		{code: 535, auth: true},
		{code: 534, auth: true},
		{code: 530, auth: true},
		{code: 454, transport: true},
		{code: 421, transport: true},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.code), func(t *testing.T) {
			t.Parallel()

			err := authError(&textproto.Error{Code: tt.code, Msg: "reply"})

			require.Equal(t, tt.auth, mailer.IsAuthFailure(err))
			require.Equal(t, tt.transport, mailer.IsTransportFailure(err))
		})
	}
}

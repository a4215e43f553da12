package contact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

func TestOutcome_Err(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want error
	}{
		{kind: KindMissingFields, want: ErrMissingFields},
		{kind: KindInvalidEmail, want: ErrInvalidEmail},
		{kind: KindMissingConfig, want: mailer.ErrMissingConfig},
		{kind: KindAuthFailed, want: mailer.ErrAuthFailed},
		{kind: KindTransportFailed, want: mailer.ErrTransportFailed},
		{kind: KindUnknown, want: ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			out := Outcome{Kind: tt.kind, Diagnostic: "details"}

			require.False(t, out.OK())
			require.ErrorIs(t, out.Err(), tt.want)
			require.Contains(t, out.Err().Error(), "details")
		})
	}
}

func TestOutcome_Success(t *testing.T) {
	t.Parallel()

	out := Outcome{Kind: KindSuccess}

	require.True(t, out.OK())
	require.NoError(t, out.Err())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "success", KindSuccess.String())
	require.Equal(t, "transport_failed", KindTransportFailed.String())
	require.Equal(t, "kind(42)", Kind(42).String())
	require.True(t, KindInvalidEmail.IsInputError())
	require.False(t, KindMissingConfig.IsInputError())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "validating", StateValidating.String())
	require.Equal(t, "sending", StateSending.String())
	require.Equal(t, "resolved", StateResolved.String())
}

package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailValidator_IsValid(t *testing.T) {
	t.Parallel()

	v := NewEmailValidator()

	tests := []struct {
		address string
		valid   bool
	}{
		{address: "ana@example.com", valid: true},
		{address: "tiago.holanda@uff.br", valid: true},
		{address: "first+tag@sub.example.org", valid: true},
		{address: "", valid: false},
		{address: "not-an-email", valid: false},
		{address: "ana.example.com", valid: false},
		{address: "ana@", valid: false},
		{address: "@example.com", valid: false},
		{address: "ana@localhost", valid: false},
		{address: "ana@exa mple.com", valid: false},
		{address: "ana@@example.com", valid: false},
		{address: " ana@example.com", valid: false},
		{address: "ana@example.com ", valid: false},
		{address: "Ana <ana@example.com>", valid: false},
		{address: strings.Repeat("a", 250) + "@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.valid, v.IsValid(tt.address))
		})
	}
}

func TestEmailValidatorFunc(t *testing.T) {
	t.Parallel()

	var got string
	v := EmailValidatorFunc(func(address string) bool {
		got = address
		return true
	})

	require.True(t, v.IsValid("x"))
	require.Equal(t, "x", got)
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	cases := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{"valid", RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret"}, ""},
		{"missing name", RegisterRequest{Email: "jane@example.com", Password: "secret"}, "Please fill all fields."},
		{"whitespace name", RegisterRequest{Name: "   ", Email: "jane@example.com", Password: "secret"}, "Please fill all fields."},
		{"missing password", RegisterRequest{Name: "Jane", Email: "jane@example.com"}, "Please fill all fields."},
		{"bad email", RegisterRequest{Name: "Jane", Email: "not-an-email", Password: "secret"}, "Please enter a valid email address"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegister(&tc.req)
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin(&LoginRequest{Email: "jane@example.com", Password: "secret"}))
	require.EqualError(t, ValidateLogin(&LoginRequest{Password: "secret"}), "Please provide email and password.")
	require.EqualError(t, ValidateLogin(&LoginRequest{Email: "jane@example.com"}), "Please provide email and password.")
}

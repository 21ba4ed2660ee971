package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-api-token"

func TestTokenVerifier_Verify(t *testing.T) {
	v := NewTokenVerifier(testSecret, WithSignedTokens())

	valid, err := v.IssueToken("tester", time.Hour)
	require.NoError(t, err)

	expired, err := v.IssueToken("tester", -time.Minute)
	require.NoError(t, err)

	foreign, err := NewTokenVerifier("another-secret").IssueToken("tester", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "Static token", token: testSecret, wantErr: false},
		{name: "Signed token", token: valid, wantErr: false},
		{name: "Wrong static token", token: "nope", wantErr: true},
		{name: "Empty token", token: "", wantErr: true},
		{name: "Expired token", token: expired, wantErr: true},
		{name: "Token signed with other key", token: foreign, wantErr: true},
		{name: "Prefix of secret", token: testSecret[:4], wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Verify(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthorized)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenVerifier_RejectsSignedTokensByDefault(t *testing.T) {
	v := NewTokenVerifier(testSecret)

	signed, err := v.IssueToken("tester", time.Hour)
	require.NoError(t, err)
	require.NotEqual(t, testSecret, signed)

	assert.NoError(t, v.Verify(testSecret))
	assert.ErrorIs(t, v.Verify(signed), ErrUnauthorized)
	assert.NoError(t, NewTokenVerifier(testSecret, WithSignedTokens()).Verify(signed))
}

func TestTokenVerifier_EmptySecret(t *testing.T) {
	v := NewTokenVerifier("")

	assert.ErrorIs(t, v.Verify(""), ErrUnauthorized)
	assert.ErrorIs(t, v.Verify("anything"), ErrUnauthorized)

	_, err := v.IssueToken("tester", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "Bearer", header: "Bearer abc", wantToken: "abc", wantOK: true},
		{name: "Lower case scheme", header: "bearer abc", wantToken: "abc", wantOK: true},
		{name: "Extra spaces", header: "  Bearer   abc  ", wantToken: "abc", wantOK: true},
		{name: "Missing", header: "", wantOK: false},
		{name: "Scheme only", header: "Bearer", wantOK: false},
		{name: "Scheme with blank token", header: "Bearer   ", wantOK: false},
		{name: "Basic auth", header: "Basic dXNlcjpwYXNz", wantOK: false},
		{name: "Bare token", header: "abc", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := BearerToken(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

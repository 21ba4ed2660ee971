package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthorized = errors.New("unauthorized request")
	ErrEmptySecret  = errors.New("api token is not configured")
)

const bearerScheme = "bearer"

// TokenVerifier accepts the configured API token. With WithSignedTokens it
// also accepts unexpired HS256 JWTs signed with that token.
type TokenVerifier struct {
	secret       []byte
	signedTokens bool
}

type Option func(*TokenVerifier)

// WithSignedTokens enables JWTs issued by IssueToken as bearer credentials.
func WithSignedTokens() Option {
	return func(v *TokenVerifier) {
		v.signedTokens = true
	}
}

func NewTokenVerifier(secret string, opts ...Option) *TokenVerifier {
	v := &TokenVerifier{
		secret: []byte(secret),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify returns nil when token grants access.
func (v *TokenVerifier) Verify(token string) error {
	if len(v.secret) == 0 || token == "" {
		return ErrUnauthorized
	}

	if subtle.ConstantTimeCompare([]byte(token), v.secret) == 1 {
		return nil
	}

	if !v.signedTokens {
		return ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return ErrUnauthorized
	}

	return nil
}

// IssueToken signs a JWT for subject that expires after ttl.
func (v *TokenVerifier) IssueToken(subject string, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", ErrEmptySecret
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// BearerToken extracts the credentials from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

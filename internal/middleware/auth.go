package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/MikhailRaia/bookmarks/internal/auth"
	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/rs/zerolog/log"
)

// UnauthorizedMessage is the body error text of every rejected request.
const UnauthorizedMessage = "Unauthorized request"

// TokenVerifier decides whether a bearer token grants access.
type TokenVerifier interface {
	Verify(token string) error
}

// AuthMiddleware rejects requests that do not carry a valid bearer token.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates an AuthMiddleware with the provided verifier.
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// RequireBearer responds 401 unless the Authorization header holds a valid bearer token.
func (a *AuthMiddleware) RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := auth.BearerToken(r.Header.Get("Authorization"))
		if !ok {
			log.Error().Str("path", r.URL.Path).Msg("Unauthorized request: missing bearer token")
			writeUnauthorized(w)
			return
		}

		if err := a.verifier.Verify(token); err != nil {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("Unauthorized request: invalid bearer token")
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.UnauthorizedBody{Error: UnauthorizedMessage})
}

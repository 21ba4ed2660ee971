package middleware

import (
	"context"

	"github.com/MikhailRaia/bookmarks/internal/auth"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCAuthMiddleware struct {
	verifier TokenVerifier
}

func NewGRPCAuthMiddleware(verifier TokenVerifier) *GRPCAuthMiddleware {
	return &GRPCAuthMiddleware{
		verifier: verifier,
	}
}

// UnaryInterceptor applies the same bearer check as RequireBearer to the
// "authorization" metadata key.
func (m *GRPCAuthMiddleware) UnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, UnauthorizedMessage)
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		log.Error().Str("method", info.FullMethod).Msg("Unauthorized request: missing bearer token")
		return nil, status.Error(codes.Unauthenticated, UnauthorizedMessage)
	}

	token, ok := auth.BearerToken(values[0])
	if !ok {
		log.Error().Str("method", info.FullMethod).Msg("Unauthorized request: malformed authorization metadata")
		return nil, status.Error(codes.Unauthenticated, UnauthorizedMessage)
	}

	if err := m.verifier.Verify(token); err != nil {
		log.Error().Err(err).Str("method", info.FullMethod).Msg("Unauthorized request: invalid bearer token")
		return nil, status.Error(codes.Unauthenticated, UnauthorizedMessage)
	}

	return handler(ctx, req)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MikhailRaia/bookmarks/internal/auth"
	"github.com/MikhailRaia/bookmarks/internal/config"
	"github.com/MikhailRaia/bookmarks/internal/handler"
	"github.com/MikhailRaia/bookmarks/internal/middleware"
	"github.com/MikhailRaia/bookmarks/internal/proto"
	"github.com/MikhailRaia/bookmarks/internal/sanitize"
	"github.com/MikhailRaia/bookmarks/internal/service"
	"github.com/MikhailRaia/bookmarks/internal/storage"
	"github.com/MikhailRaia/bookmarks/internal/storage/cache"
	"github.com/MikhailRaia/bookmarks/internal/storage/memory"
	"github.com/MikhailRaia/bookmarks/internal/storage/postgres"
	"github.com/MikhailRaia/bookmarks/internal/validate"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
)

// ErrNoStorage is returned when neither a database nor the development
// in-memory store is configured.
var ErrNoStorage = errors.New("DATABASE_DSN is required unless in-memory storage is enabled")

type pingableStorage interface {
	storage.BookmarkStorage
	Ping(ctx context.Context) error
}

type App struct {
	config     *config.Config
	handler    http.Handler
	grpcServer *grpc.Server
	closers    []func()
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{config: cfg}

	store, err := a.newStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.APIToken == "" {
		log.Warn().Msg("API_TOKEN is empty, every bookmark request will be rejected")
	}

	bookmarkService := service.NewBookmarkService(store, sanitize.New())
	validator := validate.New()
	var verifierOpts []auth.Option
	if cfg.AllowSignedTokens {
		log.Info().Msg("Signed bearer tokens are enabled")
		verifierOpts = append(verifierOpts, auth.WithSignedTokens())
	}
	verifier := auth.NewTokenVerifier(cfg.APIToken, verifierOpts...)

	httpHandler := handler.NewHandler(bookmarkService, validator, middleware.NewAuthMiddleware(verifier), store)
	a.handler = httpHandler.RegisterRoutes()

	if cfg.GRPCAddress != "" {
		authInterceptor := middleware.NewGRPCAuthMiddleware(verifier)
		a.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(authInterceptor.UnaryInterceptor))
		proto.RegisterBookmarkServiceServer(a.grpcServer, handler.NewBookmarkGRPCServer(bookmarkService, validator))
	}

	return a, nil
}

func (a *App) newStorage(ctx context.Context) (pingableStorage, error) {
	var store pingableStorage

	switch {
	case a.config.DatabaseDSN != "":
		pgStorage, err := postgres.NewStorage(ctx, a.config.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres storage: %w", err)
		}
		a.closers = append(a.closers, pgStorage.Close)
		log.Info().Msg("Using PostgreSQL storage")
		store = pgStorage
	case a.config.InMemoryStorage:
		log.Warn().Msg("Using in-memory storage, bookmarks are lost on restart")
		store = memory.NewStorage()
	default:
		return nil, ErrNoStorage
	}

	if a.config.RedisAddr != "" {
		client, err := cache.Connect(ctx, a.config.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close redis client")
			}
		})
		log.Info().Str("addr", a.config.RedisAddr).Dur("ttl", a.config.CacheTTL).Msg("Using redis bookmark cache")
		store = cache.NewStorage(store, cache.NewRedisCache(client), a.config.CacheTTL)
	}

	return store, nil
}

// Run serves HTTP, and gRPC when configured, until ctx is cancelled or a
// server fails. Both servers are then shut down within ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	httpServer := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 2)

	go func() {
		log.Info().Str("address", a.config.ServerAddress).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.grpcServer != nil {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			_ = httpServer.Close()
			return fmt.Errorf("failed to listen for gRPC: %w", err)
		}

		go func() {
			log.Info().Str("address", a.config.GRPCAddress).Msg("Starting gRPC server")
			if err := a.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	case runErr = <-errCh:
		log.Error().Err(runErr).Msg("Server failed, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if a.grpcServer != nil {
		a.stopGRPC(shutdownCtx)
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
		if runErr == nil {
			runErr = err
		}
	}

	log.Info().Msg("Server stopped")
	return runErr
}

func (a *App) stopGRPC(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		a.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn().Msg("gRPC graceful stop timed out, forcing")
		a.grpcServer.Stop()
	}
}

// Close releases the storage connections opened by NewApp.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

package handler

import (
	"context"
	"net/http"

	"github.com/MikhailRaia/bookmarks/internal/logger"
	"github.com/MikhailRaia/bookmarks/internal/middleware"
	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/MikhailRaia/bookmarks/internal/validate"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes caps the size of a create request body.
const maxBodyBytes = 1 << 20

type BookmarkService interface {
	List(ctx context.Context) ([]model.Bookmark, error)
	Create(ctx context.Context, req validate.CreateBookmarkRequest) (model.Bookmark, error)
	Get(ctx context.Context, id string) (model.Bookmark, error)
	Delete(ctx context.Context, id string) error
}

type DBPinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	bookmarkService BookmarkService
	validator       *validate.Validator
	authMiddleware  *middleware.AuthMiddleware
	dbPinger        DBPinger
}

func NewHandler(bookmarkService BookmarkService, validator *validate.Validator, authMiddleware *middleware.AuthMiddleware, dbPinger DBPinger) *Handler {
	return &Handler{
		bookmarkService: bookmarkService,
		validator:       validator,
		authMiddleware:  authMiddleware,
		dbPinger:        dbPinger,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipMiddleware)

	r.Get("/ping", h.handlePing)

	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(h.authMiddleware.RequireBearer)

		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Delete("/{id}", h.handleDelete)
	})

	return r
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.bookmarkService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookmarks)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	req, err := h.validator.Decode(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	bookmark, err := h.bookmarkService.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", BookmarkPath(bookmark.ID))
	writeJSON(w, http.StatusCreated, bookmark)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	bookmark, err := h.bookmarkService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookmark)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.bookmarkService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	if h.dbPinger == nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.dbPinger.Ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("Storage ping failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// BookmarkPath is the canonical path of a bookmark resource.
func BookmarkPath(id string) string {
	return "/bookmarks/" + id
}

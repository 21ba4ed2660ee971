package service

import (
	"context"
	"fmt"

	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/MikhailRaia/bookmarks/internal/sanitize"
	"github.com/MikhailRaia/bookmarks/internal/storage"
	"github.com/MikhailRaia/bookmarks/internal/validate"
	"github.com/rs/zerolog/log"
)

// BookmarkService validates input, talks to storage and sanitizes every
// bookmark it returns.
type BookmarkService struct {
	storage   storage.BookmarkStorage
	sanitizer *sanitize.Sanitizer
}

// NewBookmarkService constructs a BookmarkService over the given storage.
func NewBookmarkService(storage storage.BookmarkStorage, sanitizer *sanitize.Sanitizer) *BookmarkService {
	return &BookmarkService{
		storage:   storage,
		sanitizer: sanitizer,
	}
}

// List returns all bookmarks, never nil.
func (s *BookmarkService) List(ctx context.Context) ([]model.Bookmark, error) {
	bookmarks, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}

	return s.sanitizer.Bookmarks(bookmarks), nil
}

// Create stores a validated request and returns the sanitized stored bookmark.
func (s *BookmarkService) Create(ctx context.Context, req validate.CreateBookmarkRequest) (model.Bookmark, error) {
	saved, err := s.storage.Insert(ctx, req.Bookmark())
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("error creating bookmark: %w", err)
	}

	log.Info().Str("id", saved.ID).Msgf("Bookmark with id %s created", saved.ID)

	return s.sanitizer.Bookmark(saved), nil
}

// Get returns storage.ErrNotFound when the bookmark does not exist.
func (s *BookmarkService) Get(ctx context.Context, id string) (model.Bookmark, error) {
	bookmark, err := s.storage.Get(ctx, id)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("error getting bookmark %s: %w", id, err)
	}

	return s.sanitizer.Bookmark(bookmark), nil
}

// Delete returns storage.ErrNotFound when the bookmark does not exist.
func (s *BookmarkService) Delete(ctx context.Context, id string) error {
	if _, err := s.storage.Get(ctx, id); err != nil {
		return fmt.Errorf("error getting bookmark %s: %w", id, err)
	}

	removed, err := s.storage.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting bookmark %s: %w", id, err)
	}
	if !removed {
		// Removed concurrently between the lookup and the delete.
		return fmt.Errorf("error deleting bookmark %s: %w", id, storage.ErrNotFound)
	}

	log.Info().Str("id", id).Msgf("Bookmark with id %s deleted", id)

	return nil
}

package storage

import (
	"context"
	"errors"

	"github.com/MikhailRaia/bookmarks/internal/model"
)

// ErrNotFound is returned when no bookmark exists for the requested id.
var ErrNotFound = errors.New("bookmark not found")

// BookmarkStorage is the record store for bookmarks.
type BookmarkStorage interface {
	// Insert stores the bookmark and returns it with the id it was stored under.
	Insert(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error)

	List(ctx context.Context) ([]model.Bookmark, error)

	// Get returns ErrNotFound when the id is unknown.
	Get(ctx context.Context, id string) (model.Bookmark, error)

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

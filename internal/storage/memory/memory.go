package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MikhailRaia/bookmarks/internal/generator"
	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/MikhailRaia/bookmarks/internal/storage"
)

// Storage implements in-memory BookmarkStorage for testing and development.
type Storage struct {
	bookmarks map[string]model.Bookmark
	order     []string
	mutex     sync.RWMutex
}

// NewStorage creates a new in-memory storage instance.
func NewStorage() *Storage {
	return &Storage{
		bookmarks: make(map[string]model.Bookmark),
	}
}

// Insert stores the bookmark under a newly generated id.
func (s *Storage) Insert(_ context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	id, err := generator.GenerateID()
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to generate ID: %w", err)
	}
	bookmark.ID = id

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.bookmarks[id] = bookmark
	s.order = append(s.order, id)

	return bookmark, nil
}

// List returns every stored bookmark in insertion order.
func (s *Storage) List(_ context.Context) ([]model.Bookmark, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]model.Bookmark, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.bookmarks[id])
	}

	return result, nil
}

// Get retrieves the bookmark stored under id.
func (s *Storage) Get(_ context.Context, id string) (model.Bookmark, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	bookmark, found := s.bookmarks[id]
	if !found {
		return model.Bookmark{}, storage.ErrNotFound
	}

	return bookmark, nil
}

// Delete removes the bookmark stored under id.
func (s *Storage) Delete(_ context.Context, id string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, found := s.bookmarks[id]; !found {
		return false, nil
	}

	delete(s.bookmarks, id)
	for i, storedID := range s.order {
		if storedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true, nil
}

// Ping always succeeds for the in-memory store.
func (s *Storage) Ping(_ context.Context) error {
	return nil
}

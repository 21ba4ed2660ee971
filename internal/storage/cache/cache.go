// Package cache provides a read-through cache in front of a BookmarkStorage.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/MikhailRaia/bookmarks/internal/storage"
	"github.com/rs/zerolog/log"
)

// KeyPrefix namespaces every cached bookmark key.
const KeyPrefix = "bookmarks:bookmark:"

// Cache is the byte-level key/value store used by Storage.
type Cache interface {
	// Get reports found=false on a cache miss.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Storage caches get-by-id lookups of the wrapped storage.
// Cache failures are logged and never returned to the caller.
type Storage struct {
	next  storage.BookmarkStorage
	cache Cache
	ttl   time.Duration
}

// NewStorage wraps next with a read-through cache.
func NewStorage(next storage.BookmarkStorage, cache Cache, ttl time.Duration) *Storage {
	return &Storage{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

// Key returns the cache key of a bookmark id.
func Key(id string) string {
	return KeyPrefix + id
}

func (s *Storage) Insert(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	return s.next.Insert(ctx, bookmark)
}

func (s *Storage) List(ctx context.Context) ([]model.Bookmark, error) {
	return s.next.List(ctx)
}

func (s *Storage) Get(ctx context.Context, id string) (model.Bookmark, error) {
	key := Key(id)

	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
	} else if found {
		var bookmark model.Bookmark
		if err := json.Unmarshal(raw, &bookmark); err == nil {
			return bookmark, nil
		}
		log.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}

	bookmark, err := s.next.Get(ctx, id)
	if err != nil {
		return model.Bookmark{}, err
	}

	if raw, err := json.Marshal(bookmark); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
		}
	}

	return bookmark, nil
}

func (s *Storage) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if err := s.cache.Del(ctx, Key(id)); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("Cache invalidation failed")
	}

	return removed, nil
}

// Ping delegates to the wrapped storage when it supports pinging.
func (s *Storage) Ping(ctx context.Context) error {
	pinger, ok := s.next.(interface{ Ping(context.Context) error })
	if !ok {
		return errors.New("wrapped storage does not support ping")
	}
	return pinger.Ping(ctx)
}

var _ storage.BookmarkStorage = (*Storage)(nil)

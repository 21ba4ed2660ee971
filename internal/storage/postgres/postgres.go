package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MikhailRaia/bookmarks/internal/generator"
	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/MikhailRaia/bookmarks/internal/storage"
	"github.com/MikhailRaia/bookmarks/internal/storage/postgres/migrations"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

// maxInsertAttempts bounds retries on primary key collisions.
const maxInsertAttempts = 3

type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	if dsn == "" {
		return nil, errors.New("database connection string is empty")
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	s := &Storage{
		pool: pool,
	}

	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// migrate applies the embedded goose migrations over a database/sql handle
// built from the pool's connection config.
func (s *Storage) migrate(ctx context.Context) error {
	db := stdlib.OpenDB(*s.pool.Config().ConnConfig)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("error setting migration dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}

func (s *Storage) Insert(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	for attempt := 1; ; attempt++ {
		id, err := generator.GenerateID()
		if err != nil {
			return model.Bookmark{}, fmt.Errorf("error generating ID: %w", err)
		}

		_, err = s.pool.Exec(ctx,
			"INSERT INTO bookmarks (id, title, url, description, rating) VALUES ($1, $2, $3, $4, $5)",
			id, bookmark.Title, bookmark.URL, bookmark.Description, bookmark.Rating,
		)
		if err == nil {
			bookmark.ID = id
			return bookmark, nil
		}

		if isUniqueViolation(err) && attempt < maxInsertAttempts {
			log.Warn().Str("id", id).Int("attempt", attempt).Msg("Bookmark ID collision, regenerating")
			continue
		}

		return model.Bookmark{}, fmt.Errorf("error inserting bookmark into database: %w", err)
	}
}

func (s *Storage) List(ctx context.Context) ([]model.Bookmark, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id::text, title, url, description, rating FROM bookmarks ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("error selecting bookmarks: %w", err)
	}
	defer rows.Close()

	result := make([]model.Bookmark, 0)
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(&b.ID, &b.Title, &b.URL, &b.Description, &b.Rating); err != nil {
			return nil, fmt.Errorf("error scanning bookmark: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmarks: %w", err)
	}

	return result, nil
}

func (s *Storage) Get(ctx context.Context, id string) (model.Bookmark, error) {
	if !generator.IsValidID(id) {
		return model.Bookmark{}, storage.ErrNotFound
	}

	var b model.Bookmark
	err := s.pool.QueryRow(ctx,
		"SELECT id::text, title, url, description, rating FROM bookmarks WHERE id = $1",
		id,
	).Scan(&b.ID, &b.Title, &b.URL, &b.Description, &b.Rating)
	if err != nil {
		if isNotFound(err) {
			return model.Bookmark{}, storage.ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("error querying bookmark: %w", err)
	}

	return b, nil
}

func (s *Storage) Delete(ctx context.Context, id string) (bool, error) {
	if !generator.IsValidID(id) {
		return false, nil
	}

	tag, err := s.pool.Exec(ctx, "DELETE FROM bookmarks WHERE id = $1", id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("error deleting bookmark: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var _ storage.BookmarkStorage = (*Storage)(nil)

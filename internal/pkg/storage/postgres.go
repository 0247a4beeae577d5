package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// PostgresStorage persists slots in the portal_slots table.
type PostgresStorage struct {
	db      database.Querier
	closeFn func()
}

func NewPostgresStorage(ctx context.Context, db *database.DB) (*PostgresStorage, error) {
	s := &PostgresStorage{db: db, closeFn: db.Close}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStorage) migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS portal_slots (
			key        TEXT PRIMARY KEY,
			payload    BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create portal_slots table: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Read(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, `SELECT payload FROM portal_slots WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select slot %s: %w", key, err)
	}
	return payload, nil
}

func (s *PostgresStorage) Write(ctx context.Context, key string, data []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO portal_slots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
			SET payload = EXCLUDED.payload,
			    updated_at = NOW()
	`, key, data)
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStorage) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM portal_slots WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slot %s: %w", key, err)
	}
	return exists, nil
}

func (s *PostgresStorage) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

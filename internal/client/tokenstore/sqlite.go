package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/dbx"
)

// SQLiteStore keeps the credential pair in a local SQLite database,
// in the credentials key-value table.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// Save writes both tokens in a single transaction so a crash cannot leave a
// partial pair behind.
func (s *SQLiteStore) Save(ctx context.Context, pair models.TokenPair) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, KeyAccessToken, pair.Access); err != nil {
			return err
		}
		return s.set(ctx, tx, KeyRefreshToken, pair.Refresh)
	})
}

// Load returns the stored pair. When either token is missing the pair is
// treated as absent and (nil, nil) is returned.
func (s *SQLiteStore) Load(ctx context.Context) (*models.TokenPair, error) {
	access, err := s.get(ctx, s.db, KeyAccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := s.get(ctx, s.db, KeyRefreshToken)
	if err != nil {
		return nil, err
	}
	if access == "" || refresh == "" {
		return nil, nil
	}
	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (s *SQLiteStore) HasToken(ctx context.Context) (bool, error) {
	access, err := s.get(ctx, s.db, KeyAccessToken)
	if err != nil {
		return false, err
	}
	return access != "", nil
}

package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/dbx"
)

const (
	keyToken    = "auth_token"
	keyUsername = "username"
)

// SQLiteStore keeps session state in a small local SQLite database, so a
// login survives across CLI runs the way a browser token survives reloads.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, keyToken)
}

func (s *SQLiteStore) Username(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, keyUsername)
}

func (s *SQLiteStore) SaveLogin(ctx context.Context, username, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyUsername, username); err != nil {
			return err
		}
		return s.set(ctx, tx, keyToken, token)
	})
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, keyToken, token)
}

func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, keyToken)
	if err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// KV is the key-scoped record access used by the domain repositories. It is
// implemented by Store (autocommit, one statement per call) and by the
// transactional view passed to WithTx callbacks.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store persists JSON documents in the sqlite records table. Each Get/Set/
// Delete is a single statement and therefore atomic; multi-record operations
// (snapshot import/export, full wipe) go through WithTx or WipeAll.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return get(ctx, s.db, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, s.db, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return del(ctx, s.db, key)
}

// WipeAll removes every stored record in one statement. Reads afterwards see
// the absent-record defaults, as on a fresh install.
func (s *Store) WipeAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		log.Errorf("failed to wipe storage: %v", err)
		return fmt.Errorf("failed to wipe storage: %w", err)
	}
	return nil
}

// WithTx runs fn against a transactional view of the records table. When fn
// returns an error the transaction is rolled back and prior durable state is
// left unchanged.
func (s *Store) WithTx(ctx context.Context, fn func(kv KV) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(&txKV{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Errorf("failed to roll back transaction: %v", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// txKV is the KV view inside a Store transaction.
type txKV struct {
	tx *sql.Tx
}

func (t *txKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return get(ctx, t.tx, key)
}

func (t *txKV) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, t.tx, key, value)
}

func (t *txKV) Delete(ctx context.Context, key string) error {
	return del(ctx, t.tx, key)
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func get(ctx context.Context, q querier, key string) ([]byte, bool, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Errorf("failed to read record %q: %v", key, err)
		return nil, false, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return value, true, nil
}

func set(ctx context.Context, q querier, key string, value []byte) error {
	query := `INSERT INTO records (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := q.ExecContext(ctx, query, key, value); err != nil {
		log.Errorf("failed to write record %q: %v", key, err)
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, q querier, key string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		log.Errorf("failed to delete record %q: %v", key, err)
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}
	return nil
}

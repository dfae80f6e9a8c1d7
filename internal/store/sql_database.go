package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/migrations"
)

// DB is the connection factory handed to repositories. It wraps the
// database/sql pool and hands out one *sql.Conn per logical operation.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// EnsureSchema creates the notes table and its trigger when they are missing.
// Safe to call on every start.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.logger); err != nil {
		db.logger.Err(err).Str("func", "*DB.EnsureSchema").Msg("error applying schema")
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

// withConn acquires a dedicated connection, runs fn on it and releases the
// connection on every exit path.
func (db *DB) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return db.storageError(op, ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(conn)
}

func (db *DB) storageError(op string, kind, cause error) *StorageError {
	return &StorageError{
		Op:    op,
		Kind:  kind,
		Cause: cause,
		Class: db.classify(cause),
	}
}

// classify returns the classification for err, NonRetryable when no
// classifier is configured.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

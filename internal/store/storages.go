package store

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// Storages bundles the repositories built on one database.
type Storages struct {
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to the configured SQLite file, makes sure the schema
// exists and builds the repositories. Errors wrap [ErrConfiguration] or
// [ErrConnection].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

const (
	sqliteDriver = "sqlite3"
	// sqliteParams is appended to every DSN: foreign key enforcement on each
	// pooled connection and a bounded wait for a competing writer.
	sqliteParams = "_foreign_keys=on&_busy_timeout=5000"
)

// ResolveLocation turns the configured database path into an absolute path of
// an existing regular file.
func ResolveLocation(cfg config.DB) (string, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return "", fmt.Errorf("%w: SQLITE_DB is not set", ErrConfiguration)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %q: %w", ErrConfiguration, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: database file %s does not exist", ErrConfiguration, abs)
		}
		return "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrConfiguration, abs)
	}

	return abs, nil
}

func sqliteDSN(path string) string {
	return path + "?" + sqliteParams
}

// NewConnectSQLite resolves the database location, opens the pool and pings
// it. The schema is not touched here, see [DB.EnsureSchema].
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, err := ResolveLocation(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error resolving database location")
		return nil, err
	}

	conn, err := sql.Open(sqliteDriver, sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

// Package migrations embeds the SQL schema of the notes database and applies
// it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-notes/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

const dialect = "sqlite3"

// Migrate brings the schema up to date. Every migration is written with
// IF NOT EXISTS, so running it against a database that already holds the
// notes table leaves existing rows untouched.
func Migrate(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	if l.log == nil {
		return
	}
	l.log.Debug().Str("func", "goose").Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	if l.log == nil {
		return
	}
	l.log.Error().Str("func", "goose").Msgf(format, v...)
}

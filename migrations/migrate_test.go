// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/logger"
)

func openTempDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose issues its own queries against the mock, none of which are expected
	err = Migrate(context.Background(), db, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTempDB(t)

	require.NoError(t, Migrate(context.Background(), db, logger.Nop()))

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'notes'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "notes", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'trigger' AND name = 'notes_set_updated_at'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "notes_set_updated_at", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTempDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, logger.Nop()))
	_, err := db.Exec(`INSERT INTO notes (title, content) VALUES ('keep', 'me')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db, logger.Nop()))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&count))
	assert.Equal(t, 1, count)
}

// A database whose notes table was created by another tool still migrates.
func TestMigrate_ExistingTable(t *testing.T) {
	db := openTempDB(t)
	_, err := db.Exec(`CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes (title, content) VALUES ('old', 'row')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(context.Background(), db, logger.Nop()))

	var title string
	require.NoError(t, db.QueryRow(`SELECT title FROM notes WHERE id = 1`).Scan(&title))
	assert.Equal(t, "old", title)
}

func TestTrigger_RefreshesUpdatedAt(t *testing.T) {
	db := openTempDB(t)
	require.NoError(t, Migrate(context.Background(), db, logger.Nop()))

	_, err := db.Exec(`INSERT INTO notes (title, content, created_at, updated_at)
		VALUES ('t', 'c', '2000-01-01 00:00:00.000', '2000-01-01 00:00:00.000')`)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE notes SET title = 'u' WHERE id = 1`)
	require.NoError(t, err)

	var created, updated string
	require.NoError(t, db.QueryRow(`SELECT CAST(created_at AS TEXT), CAST(updated_at AS TEXT) FROM notes WHERE id = 1`).Scan(&created, &updated))
	assert.Equal(t, "2000-01-01 00:00:00.000", created)
	assert.Greater(t, updated, created)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// Operation names carried by [StorageError.Op].
const (
	OpCreate = "creating note"
	OpList   = "listing notes"
	OpFetch  = "fetching note"
	OpUpdate = "updating note"
	OpDelete = "deleting note"
)

// noteRepository is the SQLite-backed implementation of [NoteRepository].
//
// Each method runs its statements on one connection obtained through
// [DB.withConn]. Multi-statement operations (insert then re-read, existence
// check then update then re-read) are not wrapped in a transaction.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores a new note and returns the row as the engine persisted it,
// with id and both timestamps assigned.
func (r *noteRepository) Insert(ctx context.Context, create models.NoteCreate) (models.Note, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildInsertNoteQuery(create)
	if err != nil {
		return models.Note{}, r.fail(log, "*noteRepository.Insert", r.db.storageError(OpCreate, ErrBuildingSQLQuery, err))
	}

	var note models.Note
	err = r.db.withConn(ctx, OpCreate, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return r.db.storageError(OpCreate, ErrExecutingStatement, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return r.db.storageError(OpCreate, ErrExecutingStatement, err)
		}

		note, err = r.selectByID(ctx, conn, OpCreate, id)
		if errors.Is(err, ErrNoteNotFound) {
			// the row was removed between insert and re-read
			return r.db.storageError(OpCreate, ErrExecutingQuery, fmt.Errorf("note %d missing after insert", id))
		}
		return err
	})
	if err != nil {
		return models.Note{}, r.fail(log, "*noteRepository.Insert", err)
	}

	return note, nil
}

// List returns a page of notes, most recently updated first. Ties on
// updated_at are broken by the higher id.
func (r *noteRepository) List(ctx context.Context, params models.ListParams) ([]models.Note, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildListNotesQuery(params)
	if err != nil {
		return nil, r.fail(log, "*noteRepository.List", r.db.storageError(OpList, ErrBuildingSQLQuery, err))
	}

	var notes []models.Note
	err = r.db.withConn(ctx, OpList, func(conn *sql.Conn) error {
		records, err := r.queryRecords(ctx, conn, OpList, query, args)
		if err != nil {
			return err
		}

		notes = make([]models.Note, 0, len(records))
		for _, rec := range records {
			note, err := noteFromRecord(rec)
			if err != nil {
				return r.db.storageError(OpList, ErrScanningRows, err)
			}
			notes = append(notes, note)
		}
		return nil
	})
	if err != nil {
		return nil, r.fail(log, "*noteRepository.List", err)
	}

	return notes, nil
}

// Get returns the note with the given id or [ErrNoteNotFound].
func (r *noteRepository) Get(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContextOr(ctx, r.logger)

	var note models.Note
	err := r.db.withConn(ctx, OpFetch, func(conn *sql.Conn) error {
		var err error
		note, err = r.selectByID(ctx, conn, OpFetch, id)
		return err
	})
	if err != nil {
		return models.Note{}, r.fail(log, "*noteRepository.Get", err)
	}

	return note, nil
}

// Update applies the supplied fields to an existing note and returns the
// re-read row.
//
// Existence is checked with a separate query: an UPDATE writing identical
// values may report zero affected rows although the note exists.
func (r *noteRepository) Update(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if update.IsEmpty() {
		return models.Note{}, r.fail(log, "*noteRepository.Update", ErrNoFieldsToUpdate)
	}

	query, args, err := buildUpdateNoteQuery(id, update)
	if err != nil {
		return models.Note{}, r.fail(log, "*noteRepository.Update", r.db.storageError(OpUpdate, ErrBuildingSQLQuery, err))
	}

	var note models.Note
	err = r.db.withConn(ctx, OpUpdate, func(conn *sql.Conn) error {
		exists, err := r.exists(ctx, conn, OpUpdate, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNoteNotFound
		}

		if _, err = conn.ExecContext(ctx, query, args...); err != nil {
			return r.db.storageError(OpUpdate, ErrExecutingStatement, err)
		}

		note, err = r.selectByID(ctx, conn, OpUpdate, id)
		return err
	})
	if err != nil {
		return models.Note{}, r.fail(log, "*noteRepository.Update", err)
	}

	return note, nil
}

// Delete removes the note. Zero affected rows means [ErrNoteNotFound].
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildDeleteNoteQuery(id)
	if err != nil {
		return r.fail(log, "*noteRepository.Delete", r.db.storageError(OpDelete, ErrBuildingSQLQuery, err))
	}

	err = r.db.withConn(ctx, OpDelete, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return r.db.storageError(OpDelete, ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return r.db.storageError(OpDelete, ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrNoteNotFound
		}
		return nil
	})
	if err != nil {
		return r.fail(log, "*noteRepository.Delete", err)
	}

	return nil
}

func (r *noteRepository) selectByID(ctx context.Context, conn *sql.Conn, op string, id int64) (models.Note, error) {
	query, args, err := buildSelectNoteQuery(id)
	if err != nil {
		return models.Note{}, r.db.storageError(op, ErrBuildingSQLQuery, err)
	}

	records, err := r.queryRecords(ctx, conn, op, query, args)
	if err != nil {
		return models.Note{}, err
	}
	if len(records) == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	note, err := noteFromRecord(records[0])
	if err != nil {
		return models.Note{}, r.db.storageError(op, ErrScanningRows, err)
	}

	return note, nil
}

func (r *noteRepository) exists(ctx context.Context, conn *sql.Conn, op string, id int64) (bool, error) {
	query, args, err := buildNoteExistsQuery(id)
	if err != nil {
		return false, r.db.storageError(op, ErrBuildingSQLQuery, err)
	}

	var one int
	err = conn.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, r.db.storageError(op, ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *noteRepository) queryRecords(ctx context.Context, conn *sql.Conn, op, query string, args []any) ([]record, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.storageError(op, ErrExecutingQuery, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, r.db.storageError(op, ErrScanningRows, err)
	}

	return records, nil
}

// fail logs err at a level matching its kind and returns it unchanged.
func (r *noteRepository) fail(log *logger.Logger, fn string, err error) error {
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		log.Debug().Err(err).Str("func", fn).Msg("note operation rejected")
		return err
	}

	event := log.Error()
	if storageErr.Retryable() {
		event = log.Warn()
	}
	event.Err(storageErr.Cause).
		Str("func", fn).
		Str("op", storageErr.Op).
		AnErr("kind", storageErr.Kind).
		Stringer("class", storageErr.Class).
		Msg("database error")

	return err
}

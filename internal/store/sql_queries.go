package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/models"
)

const notesTable = "notes"

// noteColumns is the projection every note query reads; noteFromRecord
// expects exactly these keys.
var noteColumns = []string{"id", "title", "content", "created_at", "updated_at"}

// psql is the statement builder for SQLite: '?' placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertNoteQuery(note models.NoteCreate) (string, []any, error) {
	return psql.Insert(notesTable).
		Columns("title", "content").
		Values(note.Title, note.Content).
		ToSql()
}

func buildSelectNoteQuery(id int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListNotesQuery orders by the parsed timestamp, not its text, so rows
// written with second and millisecond precision still sort together. LIMIT
// and OFFSET are bound as parameters.
func buildListNotesQuery(params models.ListParams) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		OrderBy("julianday(updated_at) DESC", "id DESC").
		Suffix("LIMIT ? OFFSET ?", params.Limit, params.Offset).
		ToSql()
}

func buildNoteExistsQuery(id int64) (string, []any, error) {
	return psql.Select("1").
		From(notesTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// buildUpdateNoteQuery sets only the supplied fields. updated_at is left to
// the notes_set_updated_at trigger.
func buildUpdateNoteQuery(id int64, update models.NoteUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder := psql.Update(notesTable)
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteNoteQuery(id int64) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-notes/models"
)

// record is one result row keyed by column name.
type record map[string]any

// timestampLayouts are the textual forms a timestamp column may hold: the
// millisecond form written by this service, CURRENT_TIMESTAMP's form and
// RFC 3339 written by other tools.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02",
}

// scanRecords drains rows into column-keyed records. It does not close rows.
func scanRecords(rows *sql.Rows) ([]record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]record, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		rec := make(record, len(columns))
		for i, column := range columns {
			rec[column] = values[i]
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// noteFromRecord decodes a record into a note, checking that every expected
// column is present and holds a usable value.
func noteFromRecord(rec record) (models.Note, error) {
	for _, column := range noteColumns {
		if _, ok := rec[column]; !ok {
			return models.Note{}, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	var (
		note models.Note
		err  error
	)
	if note.ID, err = asInt64(rec["id"]); err != nil {
		return models.Note{}, columnError("id", err)
	}
	if note.Title, err = asString(rec["title"]); err != nil {
		return models.Note{}, columnError("title", err)
	}
	if note.Content, err = asString(rec["content"]); err != nil {
		return models.Note{}, columnError("content", err)
	}
	if note.CreatedAt, err = asTime(rec["created_at"]); err != nil {
		return models.Note{}, columnError("created_at", err)
	}
	if note.UpdatedAt, err = asTime(rec["updated_at"]); err != nil {
		return models.Note{}, columnError("updated_at", err)
	}

	return note, nil
}

func columnError(column string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidColumnType, column, err)
}

func asInt64(v any) (int64, error) {
	switch value := v.(type) {
	case int64:
		return value, nil
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case []byte:
		return strconv.ParseInt(string(value), 10, 64)
	case string:
		return strconv.ParseInt(value, 10, 64)
	default:
		return 0, fmt.Errorf("got %T", v)
	}
}

func asString(v any) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	default:
		return "", fmt.Errorf("got %T", v)
	}
}

func asTime(v any) (time.Time, error) {
	switch value := v.(type) {
	case time.Time:
		return value.UTC(), nil
	case string:
		return parseTimestamp(value)
	case []byte:
		return parseTimestamp(string(value))
	default:
		return time.Time{}, fmt.Errorf("got %T", v)
	}
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

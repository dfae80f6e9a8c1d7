package store

import (
	"errors"
	"fmt"
)

// Gateway errors. Both are fatal at startup.
var (
	// ErrConfiguration is returned by [ResolveLocation] when the database
	// location is not configured or points at a file that does not exist.
	ErrConfiguration = errors.New("database configuration error")

	// ErrConnection is returned when the engine rejects opening or pinging
	// the database, or when the schema cannot be applied.
	ErrConnection = errors.New("database connection error")
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when the targeted note id has no row.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoFieldsToUpdate is returned by Update when neither title nor
	// content is supplied.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrStorage is the umbrella error for every engine-level failure.
	// It is always carried by a [*StorageError].
	ErrStorage = errors.New("database error")
)

// Low-level database operation errors. These are wrapped into a
// [*StorageError] together with the driver error that caused them.
var (
	ErrAcquiringConnection = errors.New("failed to acquire connection")
	ErrBuildingSQLQuery    = errors.New("error building sql query")
	ErrExecutingQuery      = errors.New("error executing sql query")
	ErrExecutingStatement  = errors.New("failed to execute statement")
	ErrScanningRows        = errors.New("failed to scan note rows")
	ErrMissingColumn       = errors.New("missing column in note row")
	ErrInvalidColumnType   = errors.New("unexpected column type in note row")
)

// StorageError describes a failed repository operation.
//
// Op is the human readable operation ("creating note", "listing notes"),
// Kind is one of the low-level sentinels above and Cause is the error that
// the driver (or the row decoder) returned.
type StorageError struct {
	Op    string
	Kind  error
	Cause error
	Class ErrorClassification
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s while %s: %v", ErrStorage, e.Op, e.Cause)
}

// Unwrap exposes ErrStorage, Kind and Cause to errors.Is / errors.As.
func (e *StorageError) Unwrap() []error {
	errs := []error{ErrStorage}
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Retryable reports whether the engine flagged the failure as transient.
func (e *StorageError) Retryable() bool {
	return e.Class == Retryable
}

package store

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -destination=../mock/store_mock.go -package=mock github.com/MKhiriev/go-notes/internal/store NoteRepository

// NoteRepository persists notes. Every method acquires its own connection
// and releases it before returning.
type NoteRepository interface {
	Insert(ctx context.Context, note models.NoteCreate) (models.Note, error)
	List(ctx context.Context, params models.ListParams) ([]models.Note, error)
	Get(ctx context.Context, id int64) (models.Note, error)
	Update(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

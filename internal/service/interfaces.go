package service

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-notes/internal/service NoteService

// NoteService exposes the note use cases to the transport layer.
type NoteService interface {
	CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error)
	ListNotes(ctx context.Context, params models.ListParams) ([]models.Note, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)
	UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

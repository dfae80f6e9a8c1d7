package service

import (
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires the note service behind its validation wrapper.
func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	noteService := NewNoteService(storages.NoteRepository, logger)

	return &Services{
		NoteService:    NewNoteValidationService().Wrap(noteService),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}

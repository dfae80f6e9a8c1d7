package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (n *noteService) CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	created, err := n.noteRepository.Insert(ctx, note)
	if err != nil {
		return models.Note{}, err
	}

	logger.FromContextOr(ctx, n.logger).Debug().Str("func", "*noteService.CreateNote").Int64("note_id", created.ID).Msg("note created")
	return created, nil
}

func (n *noteService) ListNotes(ctx context.Context, params models.ListParams) ([]models.Note, error) {
	return n.noteRepository.List(ctx, params)
}

func (n *noteService) GetNote(ctx context.Context, id int64) (models.Note, error) {
	return n.noteRepository.Get(ctx, id)
}

func (n *noteService) UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	updated, err := n.noteRepository.Update(ctx, id, update)
	if err != nil {
		return models.Note{}, err
	}

	logger.FromContextOr(ctx, n.logger).Debug().Str("func", "*noteService.UpdateNote").Int64("note_id", id).Msg("note updated")
	return updated, nil
}

func (n *noteService) DeleteNote(ctx context.Context, id int64) error {
	if err := n.noteRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContextOr(ctx, n.logger).Debug().Str("func", "*noteService.DeleteNote").Int64("note_id", id).Msg("note deleted")
	return nil
}

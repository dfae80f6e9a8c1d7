package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// NoteValidationService rejects invalid input before the wrapped service
// (and therefore storage) is reached.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, v.rejected(ctx, "CreateNote", err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, params models.ListParams) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, params); err != nil {
		return nil, v.rejected(ctx, "ListNotes", err)
	}

	return v.inner.ListNotes(ctx, params)
}

func (v *NoteValidationService) GetNote(ctx context.Context, id int64) (models.Note, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Note{}, v.rejected(ctx, "GetNote", err)
	}

	return v.inner.GetNote(ctx, id)
}

// UpdateNote checks the id and that at least one field is supplied before
// anything else, so an empty update of a missing note is a validation error
// and not a not-found.
func (v *NoteValidationService) UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Note{}, v.rejected(ctx, "UpdateNote", err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, v.rejected(ctx, "UpdateNote", err)
	}

	return v.inner.UpdateNote(ctx, id, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return v.rejected(ctx, "DeleteNote", err)
	}

	return v.inner.DeleteNote(ctx, id)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}

func (v *NoteValidationService) rejected(ctx context.Context, method string, err error) error {
	logger.FromContext(ctx).Debug().Err(err).Str("func", "*NoteValidationService."+method).Msg("input rejected")
	return err
}

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

var (
	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation error")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID    = errors.New("note_id must be a positive integer")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// ValidationError reports rejected input. It matches [ErrValidation] via
// errors.Is and unwraps to Reason when one is set.
type ValidationError struct {
	Reason error
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Reason != nil {
			return e.Reason.Error()
		}
		return ErrValidation.Error()
	}

	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// NewFieldError builds a single-field [*ValidationError], used for input
// rejected before it reaches a validator (unparsable query or path values).
func NewFieldError(field, tag, message string) error {
	return &ValidationError{
		Fields: []models.FieldError{{Field: field, Tag: tag, Message: message}},
	}
}

// NoteIDError is the error for a missing, non-numeric or non-positive note id.
func NoteIDError() error {
	return &ValidationError{
		Reason: ErrInvalidNoteID,
		Fields: []models.FieldError{{Field: FieldNoteID, Tag: "gt", Message: ErrInvalidNoteID.Error()}},
	}
}

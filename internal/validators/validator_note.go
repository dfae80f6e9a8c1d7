package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-notes/models"
)

// Field names for scoped validation. They are the Go struct field names
// accepted by validator.StructPartial.
const (
	FieldTitle   = "Title"
	FieldContent = "Content"
)

// Names reported for input that is not a struct field: the path parameter
// and the request body as a whole.
const (
	FieldNoteID = "note_id"
	FieldBody   = "body"
)

// NoteValidator validates note payloads, list parameters and note ids using
// the `validate` struct tags declared in package models.
type NoteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator constructs a NoteValidator that reports fields by their
// JSON names.
func NewNoteValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &NoteValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.NoteCreate / *models.NoteCreate
//   - models.NoteUpdate / *models.NoteUpdate (at least one field required)
//   - models.ListParams / *models.ListParams
//   - int64 (note id)
//
// Returns ErrUnsupportedType for anything else. fields restricts struct
// validation to the named struct fields.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteCreate:
		return v.validateStruct(value, fields...)
	case *models.NoteCreate:
		return v.validateStruct(value, fields...)
	case models.NoteUpdate:
		return v.validateUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateUpdate(*value, fields...)
	case models.ListParams:
		return v.validateStruct(value, fields...)
	case *models.ListParams:
		return v.validateStruct(value, fields...)
	case int64:
		return validateNoteID(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *NoteValidator) validateUpdate(update models.NoteUpdate, fields ...string) error {
	if update.IsEmpty() {
		return &ValidationError{
			Reason: ErrNoFieldsToUpdate,
			Fields: []models.FieldError{{Field: FieldBody, Tag: "required_without_all", Message: ErrNoFieldsToUpdate.Error()}},
		}
	}
	return v.validateStruct(update, fields...)
}

func (v *NoteValidator) validateStruct(obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(obj)
	} else {
		if err = checkFieldNames(obj, fields); err != nil {
			return err
		}
		err = v.validate.StructPartial(obj, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: a nil pointer or a non-struct
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	result := &ValidationError{Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, models.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: msgForTag(fe),
		})
	}

	return result
}

// checkFieldNames rejects names that are not fields of obj's struct type.
// StructPartial silently skips them.
func checkFieldNames(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, name := range fields {
		if _, ok := t.FieldByName(name); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t.Name(), name)
		}
	}
	return nil
}

func validateNoteID(id int64) error {
	if id <= 0 {
		return NoteIDError()
	}
	return nil
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

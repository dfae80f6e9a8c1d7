package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// errorStatusMap is consulted in order: a validation error wrapping a store
// sentinel must still be reported as 422.
var errorStatusMap = []struct {
	target error
	status int
}{
	{validators.ErrValidation, http.StatusUnprocessableEntity},
	{store.ErrNoFieldsToUpdate, http.StatusUnprocessableEntity},
	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrStorage, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse converts err into the JSON body sent to the client.
// Storage failures expose only the operation and the engine message.
func errorResponse(err error) models.ErrorResponse {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return models.ErrorResponse{
			Detail: validationErr.Error(),
			Errors: validationErr.Fields,
		}
	}

	if errors.Is(err, store.ErrNoFieldsToUpdate) {
		return models.ErrorResponse{Detail: validators.ErrNoFieldsToUpdate.Error()}
	}

	if errors.Is(err, store.ErrNoteNotFound) {
		return models.ErrorResponse{Detail: app.MsgNotFound}
	}

	var storageErr *store.StorageError
	if errors.As(err, &storageErr) {
		return models.ErrorResponse{Detail: fmt.Sprintf(app.MsgDatabaseError, storageErr.Op, causeText(storageErr))}
	}

	return models.ErrorResponse{Detail: app.MsgInternalServerError}
}

func causeText(err *store.StorageError) string {
	if err.Cause != nil {
		return err.Cause.Error()
	}
	if err.Kind != nil {
		return err.Kind.Error()
	}
	return store.ErrStorage.Error()
}

// writeError logs err and writes its status and body. funcName identifies
// the handler in the log entry.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, errorResponse(err), status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
}

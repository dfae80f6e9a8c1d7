package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var noteFromBody models.NoteCreate
	if !decodeBody(w, r, "*Handler.createNote", &noteFromBody) {
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), noteFromBody)
	if err != nil {
		writeError(w, r, "*Handler.createNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	params, err := listParamsFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.listNotes", err)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), params)
	if err != nil {
		writeError(w, r, "*Handler.listNotes", err)
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.getNote", err)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.updateNote", err)
		return
	}

	var updateFromBody models.NoteUpdate
	if !decodeBody(w, r, "*Handler.updateNote", &updateFromBody) {
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), id, updateFromBody)
	if err != nil {
		writeError(w, r, "*Handler.updateNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody decodes the JSON request body into dst. A missing body or a
// value of the wrong JSON type is a validation failure (422); anything that
// is not JSON at all answers 400. It reports whether the handler may continue.
func decodeBody(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		writeError(w, r, funcName, validators.NewFieldError(validators.FieldBody, "required", "request body is required"))
	case errors.As(err, &typeErr):
		writeError(w, r, funcName, typeMismatchError(typeErr))
	default:
		logger.FromRequest(r).Debug().Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgInvalidJSON}, http.StatusBadRequest)
	}
	return false
}

func typeMismatchError(err *json.UnmarshalTypeError) error {
	if err.Field == "" {
		return validators.NewFieldError(validators.FieldBody, "type", "request body must be a JSON object")
	}
	return validators.NewFieldError(err.Field, "type", fmt.Sprintf("%s must be of type %s", err.Field, err.Type))
}

// noteIDFromPath parses the {id} URL parameter. Non-numeric values are a
// validation failure, not a missing route.
func noteIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, validators.NoteIDError()
	}
	return id, nil
}

func listParamsFromQuery(r *http.Request) (models.ListParams, error) {
	params := models.DefaultListParams()
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, validators.NewFieldError("limit", "integer", "limit must be an integer")
		}
		params.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return params, validators.NewFieldError("offset", "integer", "offset must be an integer")
		}
		params.Offset = offset
	}

	return params, nil
}

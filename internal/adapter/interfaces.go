// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the notes HTTP API.
//
// The primary abstraction is [NotesClient]. Its note methods mirror
// the server-side NoteService, so a remote server can stand in wherever the
// service is expected.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrValidation] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// NotesClient defines communication with the notes server.
type NotesClient interface {
	// CreateNote posts a new note and returns the stored record.
	CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error)

	// ListNotes returns one page of notes, most recently updated first.
	// Pass [models.DefaultListParams] for the server defaults.
	ListNotes(ctx context.Context, params models.ListParams) ([]models.Note, error)

	// GetNote fetches a single note. Returns [ErrNotFound] (wrapped) when the
	// id has no record.
	GetNote(ctx context.Context, id int64) (models.Note, error)

	// UpdateNote applies a partial update and returns the refreshed record.
	UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note. Returns [ErrNotFound] (wrapped) when the id
	// has no record.
	DeleteNote(ctx context.Context, id int64) error

	// Health calls the liveness endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.BuildInfoResponse, error)
}

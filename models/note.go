// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Bounds applied to note fields. Lengths are counted in Unicode code points.
const (
	NoteTitleMaxLength   = 200
	NoteContentMaxLength = 50_000

	DefaultListLimit = 200
	MaxListLimit     = 500
)

// Note is the public representation of a stored note.
//
// ID, CreatedAt and UpdatedAt are assigned by the storage engine: ID is never
// reused, CreatedAt never changes after insert and UpdatedAt is refreshed by
// a trigger on every update of the row.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteCreate is the request payload for creating a note.
type NoteCreate struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1,max=50000"`
}

// NoteUpdate is the request payload for a partial update.
// A nil field is left untouched; at least one field must be set.
type NoteUpdate struct {
	Title   *string `json:"title,omitempty" validate:"omitnil,min=1,max=200"`
	Content *string `json:"content,omitempty" validate:"omitnil,min=1,max=50000"`
}

// IsEmpty reports whether the update carries no fields.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}

// ListParams holds offset pagination for listing notes.
type ListParams struct {
	Limit  int `json:"limit" validate:"gte=1,lte=500"`
	Offset int `json:"offset" validate:"gte=0"`
}

// DefaultListParams returns the pagination used when the caller supplies none.
func DefaultListParams() ListParams {
	return ListParams{Limit: DefaultListLimit, Offset: 0}
}

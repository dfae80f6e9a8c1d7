// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteServer starts the full HTTP stack over a fresh SQLite file.
func newSQLiteServer(t *testing.T) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.db")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{Path: path}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	h := NewHandler(services, config.Server{CORSOrigins: []string{"*"}}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestSQLite_GroceriesScenario(t *testing.T) {
	srv := newSQLiteServer(t)

	status, body := doJSON(t, http.MethodPost, srv.URL+"/notes", map[string]string{"title": "Groceries", "content": "milk, eggs"})
	require.Equal(t, http.StatusCreated, status, string(body))

	var created models.Note
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Groceries", created.Title)
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt))

	// timestamps have millisecond resolution
	time.Sleep(5 * time.Millisecond)

	status, body = doJSON(t, http.MethodPut, srv.URL+"/notes/1", map[string]string{"content": "milk, eggs, bread"})
	require.Equal(t, http.StatusOK, status, string(body))

	var updated models.Note
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Groceries", updated.Title)
	assert.Equal(t, "milk, eggs, bread", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	status, body = doJSON(t, http.MethodDelete, srv.URL+"/notes/1", nil)
	require.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)

	status, body = doJSON(t, http.MethodGet, srv.URL+"/notes/1", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"Not found"}`, string(body))
}

func TestSQLite_ValidationStatuses(t *testing.T) {
	srv := newSQLiteServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{name: "limit zero", method: http.MethodGet, path: "/notes?limit=0", wantStatus: http.StatusUnprocessableEntity},
		{name: "limit above max", method: http.MethodGet, path: "/notes?limit=501", wantStatus: http.StatusUnprocessableEntity},
		{name: "negative offset", method: http.MethodGet, path: "/notes?offset=-1", wantStatus: http.StatusUnprocessableEntity},
		{name: "empty title", method: http.MethodPost, path: "/notes", body: map[string]string{"title": "", "content": "x"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "title too long", method: http.MethodPost, path: "/notes", body: map[string]string{"title": strings.Repeat("t", 201), "content": "x"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "zero id", method: http.MethodGet, path: "/notes/0", wantStatus: http.StatusUnprocessableEntity},
		{name: "empty update of missing note", method: http.MethodPut, path: "/notes/999", body: map[string]string{}, wantStatus: http.StatusUnprocessableEntity},
		{name: "update of missing note", method: http.MethodPut, path: "/notes/999", body: map[string]string{"title": "x"}, wantStatus: http.StatusNotFound},
		{name: "delete missing note", method: http.MethodDelete, path: "/notes/999", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, tt.method, srv.URL+tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status, string(body))
		})
	}
}

func TestSQLite_ListOrderAndPaging(t *testing.T) {
	srv := newSQLiteServer(t)

	for _, title := range []string{"first", "second", "third"} {
		status, _ := doJSON(t, http.MethodPost, srv.URL+"/notes", map[string]string{"title": title, "content": "c"})
		require.Equal(t, http.StatusCreated, status)
		time.Sleep(2 * time.Millisecond)
	}

	status, body := doJSON(t, http.MethodGet, srv.URL+"/notes?limit=2", nil)
	require.Equal(t, http.StatusOK, status)
	var page []models.Note
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Title)
	assert.Equal(t, "second", page[1].Title)

	status, body = doJSON(t, http.MethodGet, srv.URL+"/notes?limit=2&offset=2", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &page))
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Title)

	status, body = doJSON(t, http.MethodGet, srv.URL+"/notes?offset=10", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestSQLite_ThroughClient(t *testing.T) {
	srv := newSQLiteServer(t)
	ctx := context.Background()

	client, err := adapter.NewHTTPNotesClient(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Healthy", health.Message)

	created, err := client.CreateNote(ctx, models.NoteCreate{Title: "Заметка", Content: "日本語 ✓"})
	require.NoError(t, err)

	got, err := client.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Заметка", got.Title)
	assert.Equal(t, "日本語 ✓", got.Content)

	title := "renamed"
	updated, err := client.UpdateNote(ctx, created.ID, models.NoteUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "日本語 ✓", updated.Content)

	_, err = client.ListNotes(ctx, models.ListParams{Limit: 0})
	assert.True(t, errors.Is(err, adapter.ErrValidation))

	require.NoError(t, client.DeleteNote(ctx, created.ID))
	err = client.DeleteNote(ctx, created.ID)
	assert.True(t, errors.Is(err, adapter.ErrNotFound))

	version, err := client.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test", version.Version)
	assert.Equal(t, "N/A", version.Commit)
}

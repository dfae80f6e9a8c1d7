// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	gr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer gr.Close()
	data, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		body           string
		wantGzip       bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", status: http.StatusOK, body: `{"message":"Healthy"}`, wantGzip: true},
		{name: "client does not accept gzip", status: http.StatusOK, body: `{"message":"Healthy"}`},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", status: http.StatusOK, body: "[]", wantGzip: true},
		{name: "quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", status: http.StatusOK, body: "[]", wantGzip: true},
		{name: "created note", acceptEncoding: "gzip", status: http.StatusCreated, body: `{"id":1}`, wantGzip: true},
		{name: "error body", acceptEncoding: "gzip", status: http.StatusUnprocessableEntity, body: `{"detail":"x"}`, wantGzip: true},
		{name: "large body", acceptEncoding: "gzip", status: http.StatusOK, body: strings.Repeat("note ", 5000), wantGzip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, tt.body, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}

func TestGZip_ImplicitOK(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "implicit", gunzip(t, rr.Body))
}

func TestGZip_NoContentHasNoBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/notes/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_RequestBody(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		compress        bool
		wantStatus      int
	}{
		{name: "gzip body is decoded", contentEncoding: "gzip", compress: true, wantStatus: http.StatusOK},
		{name: "several encodings", contentEncoding: "gzip, deflate", compress: true, wantStatus: http.StatusOK},
		{name: "plain body passes through", compress: false, wantStatus: http.StatusOK},
		{name: "invalid gzip data", contentEncoding: "gzip", compress: false, wantStatus: http.StatusBadRequest},
	}

	payload := []byte(`{"title":"Groceries","content":"milk"}`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				got = string(body)
				utils.WriteJSON(w, models.HealthResponse{Message: "ok"}, http.StatusOK)
			})

			var body io.Reader = bytes.NewReader(payload)
			if tt.compress {
				body = gzipBytes(t, payload)
			}
			req := httptest.NewRequest(http.MethodPost, "/notes", body)
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				var errResp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, "invalid gzip data", errResp.Detail)
				return
			}
			assert.Equal(t, string(payload), got)
		})
	}
}

func TestGZip_PoolReuse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
	handler := withGZip(next)

	for i := 0; i < 10; i++ {
		payload := []byte("note body " + string(rune('0'+i)))
		req := httptest.NewRequest(http.MethodPost, "/notes", gzipBytes(t, payload))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
		assert.Equal(t, string(payload), gunzip(t, rr.Body), "request %d", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("concurrent"))
	})
	handler := withGZip(next)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			gr, err := gzip.NewReader(rr.Body)
			if assert.NoError(t, err) {
				data, _ := io.ReadAll(gr)
				assert.Equal(t, "concurrent", string(data))
				gr.Close()
			}
		}()
	}
	wg.Wait()
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat("This is repetitive data. ", 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10)
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closeCalled = true },
	}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closeCalled)
}

func TestWrappedReadCloser_CloseWithoutCallback(t *testing.T) {
	wrapped := &wrappedReadCloser{Reader: strings.NewReader("test")}

	assert.NoError(t, wrapped.Close())
}

func TestBodyAllowed(t *testing.T) {
	assert.True(t, bodyAllowed(http.StatusOK))
	assert.True(t, bodyAllowed(http.StatusNotFound))
	assert.False(t, bodyAllowed(http.StatusNoContent))
	assert.False(t, bodyAllowed(http.StatusNotModified))
	assert.False(t, bodyAllowed(http.StatusContinue))
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNotesClient constructs an HTTP/REST implementation of [NotesClient].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesClient(cfg config.ClientAdapter, logger *logger.Logger) (NotesClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpNotesClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateNote implements [NotesClient]. It POSTs the note to /notes and
// decodes the created record from the 201 response.
func (h *httpNotesClient) CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}

	return decodeNote(resp, "create note")
}

// ListNotes implements [NotesClient].
func (h *httpNotesClient) ListNotes(ctx context.Context, params models.ListParams) ([]models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(params.Limit)).
		SetQueryParam("offset", strconv.Itoa(params.Offset)).
		Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	notes := []models.Note{}
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}
	return notes, nil
}

// GetNote implements [NotesClient].
func (h *httpNotesClient) GetNote(ctx context.Context, id int64) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(notePath(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}

	return decodeNote(resp, "get note")
}

// UpdateNote implements [NotesClient]. Only the non-nil fields of update
// are sent.
func (h *httpNotesClient) UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(notePath(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}

	return decodeNote(resp, "update note")
}

// DeleteNote implements [NotesClient].
func (h *httpNotesClient) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(notePath(id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [NotesClient].
func (h *httpNotesClient) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", err)
	}
	return health, nil
}

// Version implements [NotesClient].
func (h *httpNotesClient) Version(ctx context.Context) (models.BuildInfoResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return models.BuildInfoResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfoResponse{}, err
	}

	var info models.BuildInfoResponse
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.BuildInfoResponse{}, fmt.Errorf("decode version response: %w", err)
	}
	return info, nil
}

func notePath(id int64) string {
	return "/notes/" + strconv.FormatInt(id, 10)
}

func decodeNote(resp *resty.Response, op string) (models.Note, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err := json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	return note, nil
}

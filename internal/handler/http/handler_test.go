package http

import (
	"testing"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newMockedHandler builds a Handler whose note service is a gomock mock and
// whose build info is fixed.
func newMockedHandler(t *testing.T) (*Handler, *mock.MockNoteService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	noteService := mock.NewMockNoteService(ctrl)

	h := NewHandler(&service.Services{
		NoteService:    noteService,
		AppInfoService: service.NewAppInfoService(models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"), logger.Nop()),
	}, config.Server{CORSOrigins: []string{"*"}}, logger.Nop())

	return h, noteService
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{HTTPAddress: "localhost:8000"}
	log := logger.Nop()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

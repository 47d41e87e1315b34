package server

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-item-service/internal/config"
	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer_DefaultsAddress(t *testing.T) {
	srv := newHTTPServer(chi.NewRouter(), config.Server{})

	require.NotNil(t, srv.server)
	assert.Equal(t, defaultHTTPAddress, srv.server.Addr)
}

func TestNewHTTPServer_UsesConfiguredAddressAndTimeouts(t *testing.T) {
	srv := newHTTPServer(chi.NewRouter(), config.Server{
		HTTPAddress:    "localhost:9091",
		RequestTimeout: 30 * time.Second,
	})

	assert.Equal(t, "localhost:9091", srv.server.Addr)
	assert.Equal(t, 30*time.Second, srv.server.ReadTimeout)
	assert.Equal(t, 30*time.Second, srv.server.WriteTimeout)
}

func TestShutdown_WithoutServerIsNoOp(t *testing.T) {
	var srv httpServer

	assert.NotPanics(t, func() { srv.Shutdown() })
}

func TestNewServer_NilHandlerFails(t *testing.T) {
	_, err := NewServer(nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errServerNotInitialized)
}

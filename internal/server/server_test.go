package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resource-service/internal/config"
	"github.com/MKhiriev/resource-service/internal/handler"
	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/utils"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_Errors(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":9999", RequestTimeout: 3 * time.Second}

	h := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, ":9999", h.server.Addr)
	assert.Equal(t, 3*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, h.server.WriteTimeout)
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, "pong", http.StatusOK)
	}), cfg, logger.Nop())

	ln, err := h.listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- h.serve(ln) }()

	client := utils.NewHTTPClient("http://"+ln.Addr().String(), time.Second)
	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"message":"pong"}`, resp.String())

	require.NoError(t, h.shutdown(context.Background()))
	assert.NoError(t, <-done)
}

func TestServer_RunStopsWhenContextIsDone(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	s := &server{
		httpServer:      newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop()),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunListenError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "256.0.0.1:http-bad"}
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop()),
		logger:     logger.Nop(),
	}

	err := s.run(context.Background())

	assert.Error(t, err)
}

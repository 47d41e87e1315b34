package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-item-service/internal/config"
	"github.com/go-chi/chi/v5"
)

// defaultHTTPAddress is used when no listen address is configured.
const defaultHTTPAddress = "localhost:8080"

type httpServer struct {
	server *http.Server
}

func newHTTPServer(router *chi.Mux, cfg config.Server) *httpServer {
	address := cfg.HTTPAddress
	if address == "" {
		address = defaultHTTPAddress
	}

	return &httpServer{
		server: &http.Server{
			Addr:         address,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if h.server == nil {
		return
	}

	if err := h.server.Shutdown(context.Background()); err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}

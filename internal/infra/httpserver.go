package infra

import (
	"context"
	"net/http"
	"time"
)

// maxHeaderBytes bounds inbound headers; tool argument payloads travel in the
// body, so headers never need more than this.
const maxHeaderBytes = 1 << 20

// HTTPServer wraps http.Server to provide graceful startup and shutdown helpers.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer creates a configured HTTP server instance.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: headerTimeout(cfg.HTTPReadTimeout),
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	return &HTTPServer{server: srv}
}

// headerTimeout keeps the header deadline inside the full-read deadline.
func headerTimeout(readTimeout time.Duration) time.Duration {
	const def = 5 * time.Second
	if readTimeout > 0 && readTimeout < def {
		return readTimeout
	}
	return def
}

// Start runs the HTTP server in the current goroutine.
func (s *HTTPServer) Start() error {
	if s.server == nil {
		return nil
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

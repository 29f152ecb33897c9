package httpserver

import (
	"net/http"
	"time"
)

// New builds the HTTP server for the callback receiver. Gateway deliveries
// are small form POSTs, so the timeouts are tight; a slow peer holding a
// connection open must not starve the listener.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
}

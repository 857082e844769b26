// Package web is the HTTP surface of the gallery: thin handlers over the
// analysis subsystem plus the embedded browser page.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed gallery.html
var galleryHTML []byte

// NewRouter wires the gallery routes and middleware chain.
func NewRouter(cfg *Config) http.Handler {
	h := NewHandlers(cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(galleryHTML)
	})
	mux.HandleFunc("GET /api/images", h.ListImages)
	mux.HandleFunc("GET /api/metadata/{name...}", h.GetMetadata)
	mux.HandleFunc("GET /image/{name...}", h.ServeImage)
	mux.HandleFunc("GET /health", h.Health)

	return SecurityHeaders(Recovery(RequestID(RequestLogger(mux))))
}

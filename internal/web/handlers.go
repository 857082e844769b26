package web

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dilharaj/airgallery/internal/analysis"
	"github.com/dilharaj/airgallery/internal/gallery"
	"github.com/dilharaj/airgallery/internal/logger"
	"github.com/dilharaj/airgallery/internal/metrics"
)

// Config carries the dependencies the gallery handlers need. The cache
// and assembler are constructed at server start and injected here; the
// handlers own no state of their own.
type Config struct {
	GalleryDir string
	Cache      *analysis.Cache
	Assembler  *analysis.Assembler
}

type Handlers struct {
	cfg *Config
}

func NewHandlers(cfg *Config) *Handlers {
	return &Handlers{cfg: cfg}
}

type imageListResponse struct {
	Images []string `json:"images"`
	Total  int      `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListImages responds with all image filenames under the gallery root.
// The directory is rescanned per request so newly added files appear
// without a restart; only their metadata is cached, not their presence.
func (h *Handlers) ListImages(w http.ResponseWriter, r *http.Request) {
	names, err := gallery.Scan(h.cfg.GalleryDir)
	if err != nil {
		logger.FromContext(r.Context()).Error("gallery scan failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list images"})
		return
	}
	if names == nil {
		names = []string{}
	}

	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, http.StatusOK, imageListResponse{Images: names, Total: len(names)})
}

// GetMetadata responds with the metadata record for one image, computing
// and caching it on first request.
func (h *Handlers) GetMetadata(w http.ResponseWriter, r *http.Request) {
	name, ok := h.resolveName(w, r)
	if !ok {
		return
	}

	meta, err := h.cfg.Cache.GetOrCompute(name, func() (*analysis.Metadata, error) {
		return h.cfg.Assembler.Assemble(h.cfg.GalleryDir, name)
	})
	if err != nil {
		if errors.Is(err, analysis.ErrFileMissing) {
			metrics.MetadataRequestsTotal.WithLabelValues("not_found").Inc()
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
			return
		}
		logger.FromContext(r.Context()).Error("metadata computation failed", "file", name, "error", err)
		metrics.MetadataRequestsTotal.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to compute metadata"})
		return
	}

	if meta.Decoded() {
		metrics.MetadataRequestsTotal.WithLabelValues("ok").Inc()
	} else {
		metrics.MetadataRequestsTotal.WithLabelValues("degraded").Inc()
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, meta)
}

// ServeImage streams the raw bytes of one image file with a strong ETag
// and a long client cache lifetime.
func (h *Handlers) ServeImage(w http.ResponseWriter, r *http.Request) {
	name, ok := h.resolveName(w, r)
	if !ok {
		return
	}

	path, err := gallery.SafeJoin(h.cfg.GalleryDir, name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
		return
	}

	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	w.Header().Set("ETag", fileETag(name, info))

	metrics.ImagesServedTotal.Inc()
	metrics.ImagesServedBytes.Add(float64(info.Size()))

	// ServeFile honors the ETag header set above for If-None-Match and
	// handles range requests.
	http.ServeFile(w, r, path)
}

// Health is the liveness endpoint.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// resolveName extracts and validates the {name} path segment. Requests
// for non-image extensions or names escaping the gallery root get a 404;
// the distinction is not leaked to the client.
func (h *Handlers) resolveName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := r.PathValue("name")
	if name == "" || !gallery.IsImageFile(name) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
		return "", false
	}
	if _, err := gallery.SafeJoin(h.cfg.GalleryDir, name); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
		return "", false
	}
	return name, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

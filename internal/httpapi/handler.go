package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/ironsheep/image-artifex/internal/geometry"
	"github.com/ironsheep/image-artifex/internal/imaging"
	"github.com/ironsheep/image-artifex/internal/transform"
)

// errBadRequest marks query parameters that could not be parsed.
var errBadRequest = errors.New("bad request")

// Config holds what a Handler needs. Root is the directory image paths in
// URLs are resolved against; nothing outside it is served.
type Config struct {
	Root         string
	Quality      int
	Background   transform.Background
	ImageOptions []transform.Option
	Logger       *log.Logger
}

// Handler serves transformed images over HTTP.
type Handler struct {
	cfg   Config
	cache *imaging.ImageCache
}

// New creates a Handler. A zero quality means imaging.DefaultQuality and a
// nil logger discards output.
func New(cfg Config) *Handler {
	if cfg.Quality <= 0 {
		cfg.Quality = imaging.DefaultQuality
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Handler{cfg: cfg, cache: imaging.NewImageCache()}
}

// Router returns a chi router with all routes registered.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(h.logRequests)
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the endpoints on r:
//
//	GET /health
//	GET /info/{path}
//	GET /{op}/{path}?width=&height=&bg=&quality=...
//
// where op is one of resize, crop, cut, thumb, reduce, rotate, opacity or
// watermark.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)
	r.Get("/info/*", h.Info)

	for op, apply := range operations {
		r.Get("/"+op+"/*", h.transformHandler(op, apply))
	}
}

// HealthCheck reports that the server is up.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// InfoResult is the body of /info.
type InfoResult struct {
	imaging.ImageInfo
	Background imaging.BackgroundReport `json:"background"`
}

// Info returns the metadata and border profile of an image.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	path := h.resolve(chi.URLParam(r, "*"))

	src, err := h.cache.Load(path)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, InfoResult{
		ImageInfo:  src.Info,
		Background: imaging.DescribeProfile(imaging.ClassifyEdges(src.Image)),
	})
}

// resolve maps a URL path below the root. Cleaning it as an absolute path
// first drops any ".." that would climb out.
func (h *Handler) resolve(urlPath string) string {
	clean := filepath.Clean("/" + filepath.FromSlash(urlPath))
	return filepath.Join(h.cfg.Root, clean)
}

func (h *Handler) transformHandler(op string, apply operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := params{r.URL.Query()}

		bg := h.cfg.Background
		if s := q.Get("bg"); s != "" {
			parsed, err := transform.ParseBackground(s)
			if err != nil {
				h.fail(w, r, fmt.Errorf("%w: bg: %v", errBadRequest, err))
				return
			}
			bg = parsed
		}

		quality, err := q.intParam("quality", h.cfg.Quality)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		src, err := h.cache.Load(h.resolve(chi.URLParam(r, "*")))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		opts := append([]transform.Option{transform.WithLogger(h.cfg.Logger)}, h.cfg.ImageOptions...)
		im, err := transform.FromSource(src, opts...)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		if err := apply(h, im, q, bg); err != nil {
			h.fail(w, r, err)
			return
		}

		var buf bytes.Buffer
		if !im.Output(&buf, quality) {
			h.fail(w, r, fmt.Errorf("failed to encode %s result", op))
			return
		}
		w.Header().Set("Content-Type", im.ContentType())
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := w.Write(buf.Bytes()); err != nil {
			h.cfg.Logger.Warn("failed to write response", "path", r.URL.Path, "err", err)
		}
	}
}

// statusFor maps an error to the HTTP status it is reported with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, geometry.ErrEmptySize):
		return http.StatusBadRequest
	case errors.Is(err, imaging.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, imaging.ErrUnsupportedFormat), errors.Is(err, imaging.ErrUnreadableImageMetadata):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.cfg.Logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		h.cfg.Logger.Debug("request rejected", "path", r.URL.Path, "status", status, "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.cfg.Logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

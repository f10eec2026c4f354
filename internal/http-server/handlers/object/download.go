package object

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"EstateDesk/entity"
	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

// Core defines the methods required by the object download handler.
type Core interface {
	OpenStoredObject(ctx context.Context, path string) (entity.ObjectMetadata, io.ReadCloser, error)
}

// Download streams a stored object once the token query parameter matches
// the token embedded in the object's metadata. The path segment arrives
// percent-encoded, slashes included.
func Download(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.object")

		logger := log.With(mod)

		rawPath := chi.URLParam(r, "*")
		path, err := url.PathUnescape(rawPath)
		if err != nil {
			path = rawPath
		}

		meta, reader, err := handler.OpenStoredObject(r.Context(), path)
		if err != nil {
			logger.Debug("object not found", slog.String("path", path), sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not found"))
			return
		}
		defer reader.Close()

		if r.URL.Query().Get("token") != meta.Token || meta.Token == "" {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Permission denied"))
			return
		}

		if meta.MIMEType != "" {
			w.Header().Set("Content-Type", meta.MIMEType)
		}
		if meta.CacheControl != "" {
			w.Header().Set("Cache-Control", meta.CacheControl)
		}

		if _, err := io.Copy(w, reader); err != nil {
			logger.Error("object stream interrupted", slog.String("path", path), sl.Err(err))
		}
	}
}

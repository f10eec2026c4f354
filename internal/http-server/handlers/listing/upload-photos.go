package listing

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
	listingsvc "EstateDesk/internal/service/listing"
)

// 32 MB in-memory cap for the multipart form, same as http defaults.
const maxUploadMemory = 32 << 20

// UploadPhotos reads the multipart "photos" files and runs the sequential
// upload flow for the listing. Progress is published over the hub, so the
// HTTP response only carries the final listing state.
func UploadPhotos(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.listing")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid multipart form"))
			return
		}

		var files []listingsvc.File
		if r.MultipartForm != nil {
			for _, header := range r.MultipartForm.File["photos"] {
				f, err := header.Open()
				if err != nil {
					render.Status(r, http.StatusBadRequest)
					render.JSON(w, r, response.Error("Unreadable file part"))
					return
				}
				data, err := io.ReadAll(f)
				f.Close()
				if err != nil {
					render.Status(r, http.StatusBadRequest)
					render.JSON(w, r, response.Error("Unreadable file part"))
					return
				}
				files = append(files, listingsvc.File{
					Name:        header.Filename,
					ContentType: header.Header.Get("Content-Type"),
					Data:        data,
				})
			}
		}

		updated, err := handler.UploadListingPhotos(r.Context(), id, files)
		if err != nil {
			if errors.Is(err, listingsvc.ErrNoFiles) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			logger.Error("photo upload flow failed",
				slog.String("listing_id", id),
				sl.Err(err),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(updated))
	}
}

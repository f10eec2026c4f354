package public

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

// GetListing serves the shareable listing page data. An unknown id
// answers a generic 404: visitors cannot tell a removed listing from one
// that never existed.
func GetListing(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		view, err := handler.GetPublicListing(r.Context(), id)
		if err != nil {
			log.Error("failed to load public listing", slog.String("id", id), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to load listing"))
			return
		}
		if view == nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not found"))
			return
		}

		render.JSON(w, r, response.Ok(view))
	}
}

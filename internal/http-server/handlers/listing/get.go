package listing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

// Get returns one listing by id for the property detail view.
func Get(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		found, err := handler.GetListing(r.Context(), id)
		if err != nil {
			log.Error("failed to get listing", slog.String("id", id), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to get listing"))
			return
		}
		if found == nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not found"))
			return
		}

		render.JSON(w, r, response.Ok(found))
	}
}

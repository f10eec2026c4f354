package listing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"EstateDesk/entity"
	"EstateDesk/internal/lib/api/cont"
	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

// List returns the authenticated user's listings, newest first.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := cont.GetUser(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Not authorized"))
			return
		}

		listings, err := handler.GetListingsByOwner(r.Context(), user.Username)
		if err != nil {
			log.Error("failed to list listings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list listings"))
			return
		}

		if listings == nil {
			listings = []entity.Listing{}
		}

		render.JSON(w, r, response.Ok(listings))
	}
}

package listing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/cont"
	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
	listingsvc "EstateDesk/internal/service/listing"
)

type createRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

// Create inserts a draft listing owned by the authenticated user.
func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.listing")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		user := cont.GetUser(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Not authorized"))
			return
		}

		var req createRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		created, err := handler.CreateListingDraft(r.Context(), user.Username, req.Title, req.Location)
		if err != nil {
			if errors.Is(err, listingsvc.ErrMissingFields) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			logger.Error("failed to create listing", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to create listing"))
			return
		}

		render.JSON(w, r, response.Ok(created))
	}
}

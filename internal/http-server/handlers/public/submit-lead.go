package public

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
	leadsvc "EstateDesk/internal/service/lead"
)

// SubmitLead captures a visitor inquiry from the public listing page.
// A tripped honeypot answers exactly like success so that the bot gets
// no signal it was filtered.
func SubmitLead(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.public")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		propertyID := chi.URLParam(r, "id")

		var req leadsvc.SubmitRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		_, err := handler.SubmitLead(r.Context(), propertyID, req)
		if err != nil {
			if errors.Is(err, leadsvc.ErrMissingFields) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			logger.Error("failed to submit lead",
				slog.String("property_id", propertyID),
				sl.Err(err),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to submit"))
			return
		}

		render.JSON(w, r, response.Ok(nil))
	}
}

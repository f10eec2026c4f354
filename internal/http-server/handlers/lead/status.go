package lead

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
	leadsvc "EstateDesk/internal/service/lead"
)

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus moves a lead between new, contacted and closed.
func SetStatus(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req statusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := handler.SetLeadStatus(r.Context(), id, req.Status); err != nil {
			if errors.Is(err, leadsvc.ErrBadStatus) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			log.Error("failed to update lead status",
				slog.String("id", id),
				slog.String("status", req.Status),
				sl.Err(err),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to update lead"))
			return
		}

		render.JSON(w, r, response.Ok(nil))
	}
}

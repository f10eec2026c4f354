package lead

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"EstateDesk/entity"
	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

// List returns every captured lead, newest first, for the admin view.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leads, err := handler.GetAllLeads(r.Context())
		if err != nil {
			log.Error("failed to list leads", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list leads"))
			return
		}

		if leads == nil {
			leads = []entity.Lead{}
		}

		render.JSON(w, r, response.Ok(leads))
	}
}

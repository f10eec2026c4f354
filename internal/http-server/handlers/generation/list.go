package generation

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"EstateDesk/entity"
	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

// ListJobs returns every generation job, newest first, for the admin view.
func ListJobs(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := handler.GetAllGenerationJobs(r.Context())
		if err != nil {
			log.Error("failed to list generation jobs", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to list jobs"))
			return
		}

		if jobs == nil {
			jobs = []entity.GenerationJob{}
		}

		render.JSON(w, r, response.Ok(jobs))
	}
}

package generation

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

type createMockResponse struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id"`
	Output string `json:"output"`
}

// CreateMock runs a mock generation job for the property named in the
// propertyId query parameter and answers once the job is done.
func CreateMock(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.generation")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		propertyID := r.URL.Query().Get("propertyId")
		if propertyID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("propertyId is required"))
			return
		}

		job, err := handler.CreateGenerationMock(r.Context(), propertyID)
		if err != nil {
			logger.Error("mock generation failed",
				slog.String("property_id", propertyID),
				sl.Err(err),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		output := ""
		if len(job.Output) > 0 {
			output = job.Output[0]
		}

		logger.Debug("mock generation done", slog.String("job_id", job.ID))
		render.JSON(w, r, createMockResponse{
			OK:     true,
			ID:     job.ID,
			Output: output,
		})
	}
}

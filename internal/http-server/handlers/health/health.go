package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type checkResponse struct {
	OK bool  `json:"ok"`
	Ts int64 `json:"ts"`
}

// Check always answers 200 with the current epoch millis.
func Check(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, checkResponse{
			OK: true,
			Ts: time.Now().UnixMilli(),
		})
	}
}

package photo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
)

// Core defines the methods required by the photo upload handler.
type Core interface {
	UploadPropertyPhoto(ctx context.Context, propertyID, fileName, contentType string, data []byte) (path, downloadURL string, err error)
}

type uploadRequest struct {
	PropertyID  string `json:"propertyId"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Base64      string `json:"base64"`
}

type uploadResponse struct {
	OK          bool   `json:"ok"`
	Path        string `json:"path"`
	DownloadURL string `json:"downloadURL"`
}

// Upload accepts a base64 photo payload, stores the decoded bytes under
// a listing-namespaced path, and returns the storage path and the public
// token URL. All four body fields are required.
func Upload(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.photo")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req uploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.PropertyID == "" || req.FileName == "" || req.ContentType == "" || req.Base64 == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("propertyId, fileName, contentType and base64 are required"))
			return
		}

		data, err := base64.StdEncoding.DecodeString(req.Base64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("base64 payload is not decodable"))
			return
		}

		path, downloadURL, err := handler.UploadPropertyPhoto(r.Context(), req.PropertyID, req.FileName, req.ContentType, data)
		if err != nil {
			logger.Error("photo upload failed",
				slog.String("property_id", req.PropertyID),
				sl.Err(err),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		logger.Debug("photo stored", slog.String("path", path))
		render.JSON(w, r, uploadResponse{
			OK:          true,
			Path:        path,
			DownloadURL: downloadURL,
		})
	}
}

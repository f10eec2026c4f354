package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"EstateDesk/entity"
	"EstateDesk/internal/lib/api/response"
	"EstateDesk/internal/lib/sl"
	authsvc "EstateDesk/internal/service/auth"
)

// Core defines the methods required by session handlers.
type Core interface {
	Login(username, password string) (*entity.UserAuth, error)
	Logout(token string)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token.
func Login(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.session")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req loginRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		user, err := handler.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid credentials"))
				return
			}
			logger.Error("login failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Login failed"))
			return
		}

		logger.Info("user logged in", slog.String("username", user.Username))
		render.JSON(w, r, response.Ok(user))
	}
}

// Logout drops the session named by the Authorization bearer token.
func Logout(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}
		handler.Logout(token)
		render.JSON(w, r, response.Ok(nil))
	}
}

package auth

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"EstateDesk/entity"
	"EstateDesk/internal/config"
	"EstateDesk/internal/lib/sl"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service issues bearer session tokens for config-seeded accounts and
// resolves them back to identities. Sessions live in memory only; the
// platform's own persistence is the session store.
type Service struct {
	users    []config.AuthUser
	mu       sync.RWMutex
	sessions map[string]*entity.UserAuth
	watcher  *StateWatcher
	log      *slog.Logger
}

func NewAuthService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		users:    conf.Auth.Users,
		sessions: make(map[string]*entity.UserAuth),
		watcher:  NewStateWatcher(),
		log:      logger.With(sl.Module("auth-service")),
	}
}

// Login validates credentials against the configured accounts and issues
// a session token.
func (s *Service) Login(username, password string) (*entity.UserAuth, error) {
	for _, u := range s.users {
		if u.Username != username || u.Password != password {
			continue
		}

		user := &entity.UserAuth{
			Username: u.Username,
			Name:     u.Name,
			Email:    u.Email,
			Token:    uuid.NewString(),
		}

		s.mu.Lock()
		s.sessions[user.Token] = user
		s.mu.Unlock()

		s.watcher.Resolve(user)
		s.log.With(slog.String("user", user.Username)).Info("user signed in")
		return user, nil
	}

	s.watcher.Resolve(nil)
	return nil, ErrInvalidCredentials
}

// Logout drops the session for a token. Unknown tokens are ignored.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	s.watcher.Resolve(nil)
}

// AuthenticateByToken resolves a session token to its identity.
func (s *Service) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	s.mu.RLock()
	user, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.New("session not found")
	}
	return user, nil
}

// Watcher exposes the auth-state observable.
func (s *Service) Watcher() *StateWatcher {
	return s.watcher
}

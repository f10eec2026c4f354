package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"EstateDesk/internal/config"
	"EstateDesk/internal/http-server/handlers/crm"
	"EstateDesk/internal/http-server/handlers/errors"
	"EstateDesk/internal/http-server/handlers/generation"
	"EstateDesk/internal/http-server/handlers/health"
	"EstateDesk/internal/http-server/handlers/lead"
	"EstateDesk/internal/http-server/handlers/listing"
	"EstateDesk/internal/http-server/handlers/object"
	"EstateDesk/internal/http-server/handlers/photo"
	"EstateDesk/internal/http-server/handlers/public"
	"EstateDesk/internal/http-server/handlers/session"
	"EstateDesk/internal/http-server/middleware/authenticate"
	"EstateDesk/internal/http-server/middleware/timeout"
	"EstateDesk/internal/lib/sl"
	"EstateDesk/internal/ws"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	ws.Authenticator
	session.Core
	listing.Core
	generation.Core
	photo.Core
	public.Core
	object.Core
	lead.Core
	crm.Core
	Hub() *ws.Hub
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(30))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	// Public surface: health probe, the serverless-style endpoints, the
	// shareable listing page and the token-gated object download.
	router.Get("/health", health.Check(log))
	router.Get("/createGenerationMockHttp", generation.CreateMock(log, handler))
	router.Post("/createGenerationMockHttp", generation.CreateMock(log, handler))
	router.Post("/uploadPropertyPhoto", photo.Upload(log, handler))

	router.Route("/p/{id}", func(r chi.Router) {
		r.Get("/", public.GetListing(log, handler))
		r.Post("/leads", public.SubmitLead(log, handler))
	})

	router.Get("/v0/b/{bucket}/o/*", object.Download(log, handler))

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/login", session.Login(log, handler))
		v1.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWs(handler.Hub(), handler, log, w, r)
		})

		v1.Group(func(r chi.Router) {
			r.Use(authenticate.New(log, handler))

			r.Post("/logout", session.Logout(log, handler))

			r.Route("/listings", func(r chi.Router) {
				r.Get("/", listing.List(log, handler))
				r.Post("/", listing.Create(log, handler))
				r.Get("/{id}", listing.Get(log, handler))
				r.Post("/{id}/photos", listing.UploadPhotos(log, handler))
			})

			r.Route("/generations", func(r chi.Router) {
				r.Get("/", generation.ListJobs(log, handler))
			})

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", lead.List(log, handler))
				r.Patch("/{id}/status", lead.SetStatus(log, handler))
			})

			r.Route("/crm", func(r chi.Router) {
				r.Get("/state", crm.State(log, handler))
				r.Get("/counts", crm.Counts(log, handler))
				r.Post("/contacts/merge", crm.MergeContacts(log, handler))
				r.Patch("/leads/{id}/status", crm.SetLeadStatus(log, handler))
				r.Get("/{collection}", crm.List(log, handler))
				r.Post("/{collection}", crm.Add(log, handler))
				r.Put("/{collection}/{id}", crm.Update(log, handler))
				r.Delete("/{collection}/{id}", crm.Remove(log, handler))
			})
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}

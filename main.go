package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"EstateDesk/impl/core"
	"EstateDesk/internal/config"
	"EstateDesk/internal/crm"
	repository "EstateDesk/internal/database"
	"EstateDesk/internal/http-server/api"
	"EstateDesk/internal/lib/logger"
	"EstateDesk/internal/lib/sl"
	"EstateDesk/internal/service/auth"
	"EstateDesk/internal/service/generation"
	"EstateDesk/internal/service/lead"
	"EstateDesk/internal/service/listing"
	"EstateDesk/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	_ = godotenv.Load()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting estatedesk", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)

	authService := auth.NewAuthService(conf, lg)
	handler.SetAuthService(authService)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}

	hub := ws.NewHub(lg)
	go hub.Run()
	handler.SetHub(hub)

	listingService := listing.NewListingService(conf, lg)
	listingService.SetHub(hub)
	handler.SetListingService(listingService)

	generationService := generation.NewGenerationService(conf, lg)
	generationService.SetHub(hub)
	handler.SetGenerationService(generationService)

	leadService := lead.NewLeadService(lg)
	leadService.SetHub(hub)
	handler.SetLeadService(leadService)

	if db != nil {
		listingService.SetRepository(db)
		generationService.SetRepository(db)
		leadService.SetRepository(db)
		handler.SetObjectStore(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	crmStore := crm.NewStore(lg)
	handler.SetCrmStore(crmStore)
	// Canned workspace data arrives after a short delay, like a remote
	// CRM backend warming up.
	time.AfterFunc(time.Duration(conf.CRM.SeedDelayMs)*time.Millisecond, crmStore.LoadSeed)

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}

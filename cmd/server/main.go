package main

import (
	"clockinout/internal/cache"
	"clockinout/internal/http/handlers"
	teamh "clockinout/internal/http/handlers/team"
	timeentryh "clockinout/internal/http/handlers/timeentry"
	userh "clockinout/internal/http/handlers/user"
	mw "clockinout/internal/http/middleware"
	"clockinout/internal/lib/config"
	"clockinout/internal/lib/sl"
	repo "clockinout/internal/repository"
	"clockinout/internal/service/team"
	"clockinout/internal/service/timeentry"
	"clockinout/internal/service/user"

	"context"
	"log/slog"
	"net/http"
	"os"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting Clock In/Out Service", slog.String("env", cfg.Env))

	db, err := sqlx.Connect("postgres", cfg.Postgres.URL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	store, err := cache.NewRedisStore(context.Background(), cfg.Redis.URL)
	if err != nil {
		log.Error("failed to establish connection with redis", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	entryRepo := repo.NewTimeEntryRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	entryService := timeentry.NewTimeEntryService(log, trManager, entryRepo, store, cfg.Cache.TTL)
	teamService := team.NewTeamService(log, trManager, teamRepo, store, cfg.Cache.TTL)
	userService := user.NewUserService(log, trManager, userRepo, store, cfg.Cache.TTL, user.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
	})

	entryHandler := timeentryh.NewTimeEntryHandler(log, entryService)
	teamHandler := teamh.NewTeamHandler(log, teamService)
	userHandler := userh.NewUserHandler(log, userService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public methods
	router.Get("/health", handlers.Healthcheck())
	router.Post("/users/login", userHandler.Login)

	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(cfg.Auth.JWTSecret))

		r.Route("/timeentries", func(r chi.Router) {
			r.Get("/", entryHandler.GetAll)
			r.Post("/", entryHandler.Create)
			r.Get("/{id}", entryHandler.GetByID)
			r.Put("/{id}", entryHandler.Update)
			r.Delete("/{id}", entryHandler.Delete)
			r.Get("/user/{userId}", entryHandler.GetByUserID)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.GetAll)
			r.Post("/", teamHandler.Create)
			r.Get("/{id}", teamHandler.GetByID)
			r.Put("/{id}", teamHandler.Update)
			r.Delete("/{id}", teamHandler.Delete)
			r.Post("/{id}/{userId}", teamHandler.AddMember)
			r.Delete("/{id}/{userId}", teamHandler.RemoveMember)
		})

		// registered without a subrouter so the public /users/login
		// route above keeps its own slot
		r.Get("/users", userHandler.GetAll)
		r.Post("/users", userHandler.Register)
		r.Get("/users/{id}", userHandler.GetByID)
		r.Put("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)
		r.Get("/users/username/{username}", userHandler.GetByUsername)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}

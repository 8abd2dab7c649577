package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/alumnihub/internal/auth"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/db"
	httpx "github.com/geocoder89/alumnihub/internal/http"
	"github.com/geocoder89/alumnihub/internal/observability"
	"github.com/geocoder89/alumnihub/internal/repo/memory"
	"github.com/geocoder89/alumnihub/internal/repo/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	// Load the config set up
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	shutdownTracer, err := observability.InitTracer(context.Background(), cfg.OTelServiceName, cfg.Env, cfg.OTelEndpoint)
	if err != nil {
		log.Error("tracer init failed", "err", err)
		os.Exit(1)
	}

	prom := observability.NewProm()

	deps, closeStore, err := buildDeps(cfg, prom)
	if err != nil {
		log.Error("store init failed", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}

	router := httpx.NewRouter(deps)

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.StoreDriver)
		err := srv.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if err := closeStore(); err != nil {
			log.Error("store close failed", "err", err)
		}

		if err := shutdownTracer(ctx); err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

// buildDeps opens the configured store and returns the router dependencies
// with a func that releases the store.
func buildDeps(cfg config.Config, prom *observability.Prom) (httpx.Deps, func() error, error) {
	deps := httpx.Deps{
		Config: cfg,
		JWT:    auth.NewManager(cfg.JWTSecret, cfg.JWTTTL()),
		Prom:   prom,
	}

	if cfg.StoreDriver == config.StoreMemory {
		store := memory.NewStore()

		deps.Store = store
		deps.Users = memory.NewUsersRepo(store)
		deps.Jobs = memory.NewJobsRepo(store)
		deps.Events = memory.NewEventsRepo(store)
		deps.Announcements = memory.NewAnnouncementsRepo(store)

		return deps, func() error { return nil }, nil
	}

	client, err := db.NewClient(cfg.MongoURI)
	if err != nil {
		return httpx.Deps{}, nil, err
	}

	closeStore := func() error { return db.Disconnect(client, 5*time.Second) }

	ctx, cancel := config.WithTimeout(15 * time.Second)
	defer cancel()

	store, err := mongodb.NewStore(ctx, client.Database(cfg.MongoDB), prom)
	if err != nil {
		_ = closeStore()
		return httpx.Deps{}, nil, err
	}

	deps.Store = store
	deps.Users = mongodb.NewUsersRepo(store)
	deps.Jobs = mongodb.NewJobsRepo(store)
	deps.Events = mongodb.NewEventsRepo(store)
	deps.Announcements = mongodb.NewAnnouncementsRepo(store)

	return deps, closeStore, nil
}

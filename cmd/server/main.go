package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cobreklo/portafolio-api/config"
	"github.com/cobreklo/portafolio-api/internal/api/router"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/logger"
	"github.com/cobreklo/portafolio-api/internal/store"
)

func main() {
	if err := logger.Init(logger.LoadLogConfigFromEnv()); err != nil {
		panic(err)
	}
	log := logger.GetAppLogger()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Configuration could not be loaded, shutting down")
	}

	client, err := database.Connect(cfg.MongoDB_ConnectionURI)
	if err != nil {
		log.WithError(err).Fatal("Database connection failed, shutting down")
	}
	if err := database.EnsureCollections(client, cfg.MongoDB_DBName); err != nil {
		log.WithError(err).Fatal("Database initialization failed, shutting down")
	}

	s := store.New(cfg, client)
	defer s.Close()

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	handlers, err := buildHandlers(initCtx, s)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("Service initialization failed, shutting down")
	}

	app := newFiberApp(cfg)
	router.SetupRoutes(app, handlers)

	go func() {
		addr := ":" + cfg.Address
		log.Infof("Listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.WithError(err).Fatal("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}

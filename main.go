package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aghadi/aghadi-api/internal/feat/contact"
	"github.com/aghadi/aghadi-api/pkg/cl/app"
	"github.com/aghadi/aghadi-api/pkg/cl/config"
	"github.com/aghadi/aghadi-api/pkg/cl/database"
	"github.com/aghadi/aghadi-api/pkg/cl/logger"
	"github.com/aghadi/aghadi-api/pkg/cl/middleware"
	"github.com/go-chi/chi/v5"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	log.Infof("Starting aghadi-api [%s mode]", cfg.Env)
	log.Infof("Database: %s %s/%s", cfg.Database.Driver, cfg.Database.Host, cfg.Database.Name)

	db := database.New(cfg, log)

	contactService := contact.NewService(db, log)
	contactHandler := contact.NewHandler(contactService, log)

	router := chi.NewRouter()
	middleware.DefaultStack(router, log)

	application := app.New(router, log, db, contactService, contactHandler)
	if err := application.Start(ctx); err != nil {
		log.Errorf("Startup failed: %v", err)
		os.Exit(1)
	}

	go func() {
		if err := application.Serve(cfg.Server.Addr()); err != nil {
			log.Errorf("Server failed: %v", err)
			os.Exit(1)
		}
	}()
	log.Infof("API server running on http://localhost%s", cfg.Server.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	application.Shutdown(ctx)
	log.Info("Server stopped")
}

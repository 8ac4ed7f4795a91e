package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AmHughesAbsalom/halftime-analytics/analytics"
	"AmHughesAbsalom/halftime-analytics/config"
	dbconnection "AmHughesAbsalom/halftime-analytics/db_connection"
	"AmHughesAbsalom/halftime-analytics/handlers"
	"AmHughesAbsalom/halftime-analytics/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(os.Stderr, "info", false)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Msg("halftime-analytics starting")

	conn, db, err := dbconnection.NewDBConnection(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("connected to database")

	if err := dbconnection.RunMigrations(db, cfg.Database.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	engine := analytics.NewEngine(conn.GamesDBConnection, cfg.Analytics.Defaults(), log)
	handler := handlers.NewHandler(engine, db, cfg.Analytics.Defaults(), cfg.Server.RequestTimeout)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      handlers.NewRouter(handler, cfg.Server.CORSOrigins, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Port).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}

	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown failed")
			if err := srv.Close(); err != nil {
				log.Error().Err(err).Msg("could not stop server")
			}
		}
	}

	log.Info().Msg("shutdown complete")
}

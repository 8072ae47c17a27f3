// Command intake-server serves the patient intake form submit endpoint.
//
// Configuration is read from INTAKE_* environment variables; see
// internal/config.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gobd/intakevalidation/internal/config"
	"github.com/Gobd/intakevalidation/internal/handler"
	"github.com/Gobd/intakevalidation/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("intake-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("intake-server", cfg.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	h, err := handler.New(log, cfg.ThankYouURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error building handler")
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.Init(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server Shutdown")
	}
}

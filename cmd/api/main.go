package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medoffice/patient-api/internal/config"
	"github.com/medoffice/patient-api/internal/handler"
	patientHandler "github.com/medoffice/patient-api/internal/handler/patient"
	"github.com/medoffice/patient-api/internal/middleware"
	"github.com/medoffice/patient-api/internal/repository/postgres"
	"github.com/medoffice/patient-api/internal/router"
	patientService "github.com/medoffice/patient-api/internal/service/patient"
	"github.com/medoffice/patient-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	patientSvc := patientService.NewService(patientRepo, appointmentRepo)

	h := handler.NewHandler(db)
	patientH := patientHandler.NewHandler(patientSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}

	r := router.New(h, patientH, router.Config{
		CORS: corsConfig,
		RateLimit: middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RPS),
			Burst: cfg.RateLimit.Burst,
		},
		Timeout:       middleware.TimeoutConfig{Duration: cfg.Server.RequestTimeout},
		CacheTTL:      cfg.Cache.TTL,
		CacheCleanup:  cfg.Cache.CleanupInterval,
		StaticDir:     cfg.Static.Dir,
		MetricsPrefix: "patient_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-intake-backend/config"
	_ "go-intake-backend/docs" // Important for Swagger
	v1 "go-intake-backend/internal/delivery/http/v1"
	"go-intake-backend/internal/repository/postgres"
	"go-intake-backend/internal/usecase"
	"go-intake-backend/pkg/database"
	"go-intake-backend/pkg/logger"
	"go-intake-backend/pkg/reddit"
	"go-intake-backend/pkg/redis"
	"go-intake-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Applicant Intake API
// @version         1.0
// @description     Backend for applicant qualification and contractor join requests.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting intake backend", "port", cfg.Port, "env", cfg.GoEnv)

	// 3. Setup Database (pool is created on first use so a missing
	// connection string surfaces per-request, not as a startup crash)
	pg := database.NewPostgres(database.Config{
		URL:                   cfg.DBUrl,
		UseEncryptedTransport: cfg.UseEncryptedTransport,
		EnvVar:                cfg.DBUrlEnvVar,
	})
	defer pg.Close()

	// 4. Setup Redis (optional; rate limiter falls back to in-memory)
	redisClient, err := redis.NewClient(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	})
	if err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	applicantRepo := postgres.NewApplicantRepository(pg)
	contractorRepo := postgres.NewContractorRequestRepository(pg)

	// 6. Setup Identity Verifier
	verifier := reddit.NewClient(reddit.Config{
		ClientID:     cfg.RedditClientID,
		ClientSecret: cfg.RedditClientSecret,
	})

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	intakeUC := usecase.NewIntakeUsecase(applicantRepo, verifier, validate)
	contractorUC := usecase.NewContractorUsecase(contractorRepo, applicantRepo, validate)
	healthUC := usecase.NewHealthUsecase(redisClient)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		IntakeUC:     intakeUC,
		ContractorUC: contractorUC,
		HealthUC:     healthUC,
		RedisClient:  redisClient,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

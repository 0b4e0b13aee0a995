// cmd/server is the application entry point. It wires together all
// layers and starts the HTTP server.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"afairytale/config"
	_ "afairytale/docs"
	"afairytale/internal/adapters/auth"
	"afairytale/internal/adapters/email"
	"afairytale/internal/adapters/storage"
	httpdelivery "afairytale/internal/delivery/http"
	"afairytale/internal/delivery/http/controllers"
	"afairytale/internal/delivery/http/middleware"
	"afairytale/internal/repository/postgres"
	"afairytale/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title A Fairy Tale API
// @version 1.0
// @description Content backend for the A Fairy Tale event collective: events, residents, image uploads and admin statistics.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	residentRepo := postgres.NewResidentRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	imageStore := storage.NewLocalStore(cfg.PublicDir)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	// Services
	eventSvc := services.NewEventService(eventRepo, serviceTimeout)
	residentSvc := services.NewResidentService(residentRepo, serviceTimeout)
	statsSvc := services.NewStatsService(residentRepo, eventRepo, serviceTimeout)
	authSvc := services.NewAuthService(userRepo, hasher, issuer, cfg.TokenExpiry, serviceTimeout)
	contactSvc := services.NewContactService(mailer, renderer, cfg.ContactToAddress)

	// Router
	mux := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:    logger,
		Verifier:  verifier,
		Events:    controllers.NewEventController(logger, eventSvc),
		Residents: controllers.NewResidentController(logger, residentSvc),
		Stats:     controllers.NewStatsController(logger, statsSvc),
		Upload:    controllers.NewUploadController(logger, imageStore),
		Auth:      controllers.NewAuthController(logger, authSvc),
		Contact:   controllers.NewContactController(logger, contactSvc),
		PublicDir: cfg.PublicDir,
	})

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

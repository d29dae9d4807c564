package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/casadf-backend/internal/handlers/http"
	"github.com/rafabene/casadf-backend/internal/infrastructure/config"
	"github.com/rafabene/casadf-backend/internal/infrastructure/i18n"
	"github.com/rafabene/casadf-backend/internal/infrastructure/logging"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/casadf-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting casadf backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// O pool só é aberto no primeiro uso; sem DATABASE_URL a API sobe sem persistência
	conn := postgres.NewConnector(&cfg.Database, logger)
	if cfg.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := postgres.Migrate(ctx, conn)
		cancel()
		if err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
		logger.Info("database migrated")
	}
	logger.Info("database state", "state", conn.State().String())

	i18nService, err := i18n.New(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.DefaultLanguage(),
		"supported_languages", i18nService.Languages(),
	)

	repos := postgres.NewRepositories(conn, logger, cfg.Auth.OwnerOpenID)

	propertyService := services.NewPropertyService(repos.Properties, repos.PropertyImages, logger)
	leadService := services.NewLeadService(repos.Leads, repos.Interactions, logger)
	blogService := services.NewBlogService(repos.BlogPosts, repos.BlogCategories, repos.Reviews)
	settingsService := services.NewSettingsService(repos.SiteSettings, logger)
	userService := services.NewUserService(repos.Users, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.Origins(),
		I18n:           i18nService,
		Health:         httphandlers.NewHealthHandler(cfg.Env, conn),
		Property:       httphandlers.NewPropertyHandler(propertyService, logger),
		Lead:           httphandlers.NewLeadHandler(leadService, logger),
		Blog:           httphandlers.NewBlogHandler(blogService, logger),
		Settings:       httphandlers.NewSettingsHandler(settingsService, logger),
		User:           httphandlers.NewUserHandler(userService, logger),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := conn.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}

	logger.Info("server exited")
}

// Package main is the entrypoint for the Sitesmith API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sitesmith/sitesmith/internal/ai"
	"github.com/sitesmith/sitesmith/internal/cache"
	"github.com/sitesmith/sitesmith/internal/config"
	"github.com/sitesmith/sitesmith/internal/handler"
	"github.com/sitesmith/sitesmith/internal/metrics"
	"github.com/sitesmith/sitesmith/internal/middleware"
	"github.com/sitesmith/sitesmith/internal/repository"
	"github.com/sitesmith/sitesmith/internal/server"
	"github.com/sitesmith/sitesmith/internal/service"
	"github.com/sitesmith/sitesmith/web"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize session store
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Initialize completion client
	aiClient := ai.New(cfg)

	// Initialize services
	recorder := metrics.NewInMemory()
	authService := service.NewAuthService(repo, cacheClient, cfg.SessionTTL, recorder)
	generatorService := service.NewGeneratorService(aiClient, recorder)
	generationService := service.NewGenerationService(repo, recorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	authHandler := handler.NewAuthHandler(authService, logger, cfg.SessionTTL, cfg.IsProduction())
	generateHandler := handler.NewGenerateHandler(generatorService, logger)
	generationHandler := handler.NewGenerationHandler(generationService, logger)
	templatesHandler := handler.NewTemplatesHandler()
	metricsHandler := handler.NewMetricsHandler(recorder)

	// Setup router
	r := setupRouter(
		h, healthHandler, authHandler, generateHandler,
		generationHandler, templatesHandler, metricsHandler,
		cacheClient, cfg, logger,
	)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"model", cfg.OpenAIModel,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	generateHandler *handler.GenerateHandler,
	generationHandler *handler.GenerationHandler,
	templatesHandler *handler.TemplatesHandler,
	metricsHandler *handler.MetricsHandler,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Operational metrics
	r.Get("/metrics", metricsHandler.Metrics)

	securityCfg := middleware.SecurityConfig{
		IsDevelopment:      cfg.IsDevelopment(),
		AllowedOrigins:     cfg.GetCORSAllowedOrigins(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	corsCfg.AllowCredentials = len(corsCfg.AllowedOrigins) > 0

	sessionCfg := middleware.SessionConfig{
		Logger:   logger,
		Sessions: cacheClient,
	}

	// Account and session endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.Security(securityCfg))
		r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
		r.Use(middleware.CORS(corsCfg))

		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Security(securityCfg))
		r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
		r.Use(middleware.CORS(corsCfg))

		// Unmatched API paths get a JSON 404 instead of the UI fallback
		r.NotFound(h.NotFound)

		// Info endpoint
		r.Get("/", h.Hello)

		// Template catalog is public; it is static data the UI needs
		// before login as well
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templatesHandler.List)
			r.Get("/{id}", templatesHandler.Get)
		})

		// Session-guarded operations
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(sessionCfg))

			r.Post("/generate", generateHandler.Generate)

			r.Route("/generations", func(r chi.Router) {
				r.Post("/", generationHandler.Save)
				r.Get("/", generationHandler.List)
				r.Delete("/{id}", generationHandler.Delete)
			})
		})
	})

	// Embedded browser UI
	r.Handle("/*", web.Handler())

	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}

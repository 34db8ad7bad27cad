package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aimethods/explorer/config"
	"github.com/aimethods/explorer/controllers"
	"github.com/aimethods/explorer/database"
	"github.com/aimethods/explorer/inference"
	"github.com/aimethods/explorer/logging"
	"github.com/aimethods/explorer/repositories"
	"github.com/aimethods/explorer/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load environment variables from .env file, if one exists
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize the request log store. Initialization failure leaves the
	// store degraded (writes will be attempted and fail silently) but never
	// aborts startup: logging is best-effort, not required for the API.
	db, err := database.Initialize(cfg.DBPath)
	if err != nil {
		logger.Error("Request log store initialization failed, history logging is degraded", zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize upstream inference client
	client := inference.NewClient(cfg, logger)

	// Initialize services
	srvs := services.NewServices(repos, client, logger)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r := setupRouter(ctrl, cfg)

	logger.Info("AI Methods Explorer starting",
		zap.String("port", cfg.Port),
		zap.String("database", cfg.DBPath),
	)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // slow upstream calls block until this deadline
	r.Use(middleware.Compress(5))

	// CORS, allowing requests from the frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", ctrl.API.Root)
	r.Get("/health", ctrl.API.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/summarize", ctrl.API.Summarize)
		r.Post("/sentiment", ctrl.API.Sentiment)
		r.Get("/methods", ctrl.API.Methods)
		r.Get("/history", ctrl.API.History)
	})

	return r
}

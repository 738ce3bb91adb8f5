package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expensemanager/backend/docs"
	"github.com/expensemanager/backend/internal/config"
	"github.com/expensemanager/backend/internal/database"
	"github.com/expensemanager/backend/internal/handlers"
	mW "github.com/expensemanager/backend/internal/middleware"
	"github.com/expensemanager/backend/internal/observability/metrics"
	"github.com/expensemanager/backend/internal/seed"
	"github.com/expensemanager/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Expense Manager API
// @version 1.0
// @description Monthly account balance ledger: accounts, periods and ledger entries with derived spending.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Starting %s %s (env %s, storage %s)", cfg.Name, cfg.Version, cfg.Env, cfg.StorageType)

	// Initialize Swagger docs
	docs.SwaggerInfo.Version = cfg.Version
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	ctx := context.Background()

	redisClient := database.InitRedis(ctx, cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	store, db, err := database.OpenStore(ctx, cfg, redisClient)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	metrics.Init(db, log.Default())

	var ledgerOpts []services.LedgerOption
	if cfg.LogOperations {
		ledgerOpts = append(ledgerOpts, services.WithOperationLogger(services.NewOperationLogger(log.Default())))
	}
	accountService := services.NewAccountService(store)
	ledgerService := services.NewLedgerService(store, store, ledgerOpts...)

	if cfg.SeedFile != "" {
		fixture, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		res, err := seed.Apply(ctx, accountService, ledgerService, fixture)
		if err != nil {
			log.Fatalf("Failed to apply seed file: %v", err)
		}
		log.Printf("Seeded %d accounts, %d entries (%d already present)", res.Accounts, res.Entries, res.Skipped)
	}

	accountHandler := handlers.NewAccountHandler(accountService, ledgerService)
	periodHandler := handlers.NewPeriodHandler(accountService)
	entryHandler := handlers.NewEntryHandler(ledgerService)
	healthHandler := handlers.NewHealthHandler(cfg.Version, startedAt)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mW.Metrics)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", accountHandler.Routes)
		r.Route("/periods", periodHandler.Routes)
		r.Route("/entries", entryHandler.Routes)
	})

	// Web UI, falling back to the welcome message when none is built
	r.Handle("/*", mW.StaticFileServer(cfg.StaticDir, http.HandlerFunc(handlers.Welcome)))

	// Start server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}

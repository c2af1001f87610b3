package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/telemetry"
	"storefront/internal/view"
	"storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"env", cfg.Env,
		"log_level", cfg.LogLevel,
	)

	// Open the database and ensure the schema exists
	db, err := store.Open(cfg.Database, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		log.Error("failed to bootstrap schema", "error", err)
		os.Exit(1)
	}

	// Initialize AWS clients. Credential problems surface per call.
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Error("failed to load AWS configuration", "error", err)
		os.Exit(1)
	}
	uploader := storage.NewS3Uploader(s3.NewFromConfig(awsCfg), cfg.AWS, log)
	metrics := telemetry.NewCloudWatchRecorder(cloudwatch.NewFromConfig(awsCfg), cfg.AWS.MetricNamespace, log)

	// Initialize the page renderer
	renderer, err := view.NewRenderer(log)
	if err != nil {
		log.Error("failed to initialize templates", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	productRepo := repository.NewPostgresProductRepository(db.DB())
	orderRepo := repository.NewPostgresOrderRepository(db.DB())

	// Initialize services
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(productRepo)
	orderService := service.NewOrderService(orderRepo)

	// Session cart cookie codec
	cartCodec := session.NewCartCodec(cfg.Session.Secret, cfg.Env == "production", log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, log)
	productHandler := handlers.NewProductHandler(productService, metrics, renderer, log)
	cartHandler := handlers.NewCartHandler(cartService, cartCodec, metrics, renderer, log)
	checkoutHandler := handlers.NewCheckoutHandler(cartService, orderService, cartCodec, metrics, renderer, log)
	adminHandler := handlers.NewAdminHandler(uploader, productRepo, renderer, log)
	metricsHandler := handlers.NewMetricsHandler(db, productService, orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Storefront pages
	r.Get("/", productHandler.Home)
	r.Get("/products", productHandler.List)
	r.Get("/product/{productID}", productHandler.Detail)
	r.Get("/cart", cartHandler.ViewCart)
	r.Post("/add_to_cart", cartHandler.AddToCart)
	r.Get("/checkout", checkoutHandler.Show)
	r.Post("/checkout", checkoutHandler.Submit)

	// Admin
	r.Get("/admin/upload", adminHandler.ShowUploadForm)
	r.Post("/admin/upload", adminHandler.Upload)

	// Operational endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/api/metrics", metricsHandler.ServeHTTP)

	r.NotFound(handlers.NotFound(renderer))
	r.MethodNotAllowed(handlers.MethodNotAllowed(renderer))

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

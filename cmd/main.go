package main

import (
	"time"

	"supplier-portal/internal/generator"
	"supplier-portal/internal/handler"
	"supplier-portal/internal/middleware"
	"supplier-portal/internal/store"
	"supplier-portal/pkg/config"
	"supplier-portal/pkg/database"
	"supplier-portal/pkg/logger"
	"supplier-portal/pkg/metrics"
	"supplier-portal/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("supplier-portal")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting supplier portal...", zap.String("environment", cfg.Server.Env))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	httpMetrics := metrics.NewHTTPMetrics(cfg.ServiceName)
	log.Info("Prometheus metrics initialized")

	// Generate the supplier corpus. This runs to completion before the
	// server accepts any request; the corpus is immutable afterwards.
	start := time.Now()
	suppliers := generator.Generate(cfg.Corpus.SupplierCount)
	elapsed := time.Since(start)
	prometheus.RecordCorpusGenerated(len(suppliers), elapsed)
	log.Info("Supplier corpus generated",
		zap.Int("count", len(suppliers)),
		zap.Duration("elapsed", elapsed))

	supplierStore := store.NewSupplierStore(suppliers)

	// Initialize the annotation database and run migrations
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(store.Models()...); err != nil {
		log.Fatal("Failed to migrate database schemas", zap.Error(err))
	}
	log.Info("Annotation database ready", zap.String("dsn", cfg.DB.DSN))

	annotationStore := store.NewAnnotationStore(db)

	// Initialize handlers
	supplierHandler := handler.NewSupplierHandler(supplierStore)
	userHandler := handler.NewUserHandler(annotationStore)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	// The CORS middleware only decorates cross-origin requests; the dashboard
	// contract promises the allow-origin header on every response.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
			return next(c)
		}
	})
	e.Use(middleware.RequestIDMiddleware)
	e.Use(httpMetrics.Middleware())

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Float64("duration_s", time.Since(start).Seconds()),
				zap.String("ip", c.RealIP()),
			)

			return err
		}
	})

	// OPTIONS on any path answers with the CORS allowances
	e.OPTIONS("/*", handler.Options)

	// Health and metrics endpoints
	e.GET("/health", handler.Hello)
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	// API routes
	api := e.Group("/api")
	api.RouteNotFound("/*", handler.NotFound)

	api.GET("/suppliers", supplierHandler.ListSuppliers)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", supplierHandler.DashboardStats)
	dashboard.GET("/suppliers", supplierHandler.DashboardSuppliers)
	dashboard.GET("/suppliers/search", supplierHandler.SearchSuppliers)

	user := api.Group("/user")
	user.GET("/favorites", userHandler.GetFavorites)
	user.GET("/notes", userHandler.GetNotes)
	user.GET("/inbox", userHandler.GetInbox)
	user.GET("/profile", userHandler.GetProfile)
	user.POST("/favorites/add", userHandler.AddFavorite)
	user.POST("/favorites/remove", userHandler.RemoveFavorite)
	user.POST("/notes/save", userHandler.SaveNote)
	user.POST("/inbox/add", userHandler.AddInboxMessage)

	// Dashboard static assets when a frontend directory is configured
	if cfg.Server.FrontendDir != "" {
		e.Static("/", cfg.Server.FrontendDir)
		log.Info("Serving dashboard assets", zap.String("dir", cfg.Server.FrontendDir))
	} else {
		e.GET("/", handler.Hello)
	}

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}

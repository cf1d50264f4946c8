package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mueblessanmiguel/catalogo_api/internal/access"
	"github.com/mueblessanmiguel/catalogo_api/internal/cache"
	"github.com/mueblessanmiguel/catalogo_api/internal/config"
	"github.com/mueblessanmiguel/catalogo_api/internal/database"
	"github.com/mueblessanmiguel/catalogo_api/internal/handler"
	"github.com/mueblessanmiguel/catalogo_api/internal/middleware"
	"github.com/mueblessanmiguel/catalogo_api/internal/repository"
	"github.com/mueblessanmiguel/catalogo_api/internal/service"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// main is the application entrypoint for the catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting catalogo api")

	if !cfg.AuthConfigured() {
		log.Warn().Msg("JWT_SECRET not set - auth endpoints will answer AUTH_NOT_CONFIGURED")
	}
	utils.InitJWT(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	denylist := cache.NewSessionDenylist(redisClient)
	inquiryLimiter := cache.NewRateLimiter(redisClient, cfg.RateLimit.InquiryLimit, cfg.RateLimit.InquiryWindow)

	// 4. Build the admin allow-list
	allowlist := access.ParseAllowlist(cfg.AdminEmails)
	if allowlist.Size() == 0 {
		log.Warn().Msg("ADMIN_EMAILS is empty - no account will have admin capability")
	}

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 6. Initialize services
	catalogSvc := service.NewCatalogService(productRepo)
	productAdminSvc := service.NewProductAdminService(productRepo)
	inquirySvc := service.NewInquiryService(inquiryRepo)
	authSvc := service.NewAuthService(userRepo, denylist, cfg.AuthConfigured())

	storageSvc, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		log.Error().Err(err).Msg("storage service initialization failed")
		os.Exit(1)
	}

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:       handler.NewHealthHandler(db, redisClient),
		Catalog:      handler.NewCatalogHandler(catalogSvc, cfg.WhatsAppPhone),
		Contact:      handler.NewContactHandler(cfg.WhatsAppPhone),
		Inquiry:      handler.NewInquiryHandler(inquirySvc),
		ProductAdmin: handler.NewProductAdminHandler(productAdminSvc),
		Auth:         handler.NewAuthHandler(authSvc, allowlist),
		Upload:       handler.NewUploadHandler(storageSvc),
	}

	// 8. Initialize middleware
	adminMw := middleware.NewAdminMiddleware(allowlist, denylist)
	submitLimit := middleware.RateLimitMiddleware(inquiryLimiter, "inquiry")

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, adminMw, submitLimit)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health       *handler.HealthHandler
	Catalog      *handler.CatalogHandler
	Contact      *handler.ContactHandler
	Inquiry      *handler.InquiryHandler
	ProductAdmin *handler.ProductAdminHandler
	Auth         *handler.AuthHandler
	Upload       *handler.UploadHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, adminMw *middleware.AdminMiddleware, submitLimit gin.HandlerFunc) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public catalog (anonymous reads)
	router.GET("/v1/products", handlers.Catalog.ListProducts)
	router.GET("/v1/products/featured", handlers.Catalog.ListFeatured)
	router.GET("/v1/products/:slug", handlers.Catalog.GetProduct)
	router.GET("/v1/products/:slug/related", handlers.Catalog.GetRelated)
	router.GET("/v1/contact/links", handlers.Contact.GetLinks)

	// Public contact form (the only anonymous mutation)
	router.POST("/v1/inquiries", submitLimit, handlers.Inquiry.Submit)

	// Auth
	auth := router.Group("/v1/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", handlers.Auth.Logout)
		auth.GET("/session", handlers.Auth.Session)
	}

	// Admin routes (JWT + email allow-list)
	admin := router.Group("/v1/admin")
	admin.Use(adminMw.Handle())
	{
		// Product Management
		admin.GET("/products", handlers.ProductAdmin.List)
		admin.POST("/products", handlers.ProductAdmin.Create)
		admin.POST("/products/images", handlers.Upload.UploadImage)
		admin.GET("/products/slug/:slug", handlers.ProductAdmin.GetBySlug)
		admin.GET("/products/:id", handlers.ProductAdmin.Get)
		admin.PUT("/products/:id", handlers.ProductAdmin.Update)
		admin.DELETE("/products/:id", handlers.ProductAdmin.Delete)
		admin.DELETE("/products/:id/permanent", handlers.ProductAdmin.HardDelete)

		// Inquiry triage
		admin.GET("/inquiries", handlers.Inquiry.List)
		admin.GET("/inquiries/new/count", handlers.Inquiry.CountNew)
		admin.PUT("/inquiries/:id/status", handlers.Inquiry.UpdateStatus)
		admin.DELETE("/inquiries/:id", handlers.Inquiry.Delete)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

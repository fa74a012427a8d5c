package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"tenderdesk/internal/auth"
	"tenderdesk/internal/cache"
	"tenderdesk/internal/config"
	"tenderdesk/internal/handler"
	"tenderdesk/internal/middleware"
	"tenderdesk/internal/navigation"
	"tenderdesk/internal/repository/postgres"
	"tenderdesk/internal/service"
	"tenderdesk/internal/storage"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// JWT verifier for bearer-token authentication
	jwtVerifier, err := auth.NewJWKSVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Apply schema migrations, then create the pgx connection pool
	if err := postgres.Migrate(cfg.DatabaseURL, logger); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	fileRepo := postgres.NewFileRepository(repoConfig)
	menuRepo := postgres.NewMenuRepository(repoConfig)

	// Object store for uploaded file payloads
	var blobs storage.ObjectStore
	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
		if err != nil {
			log.Fatalf("Failed to load AWS configuration: %v", err)
		}
		blobs = storage.NewS3Store(s3.NewFromConfig(awsCfg), cfg.S3Bucket)
		logger.Info("object store configured", "bucket", cfg.S3Bucket, "region", cfg.S3Region)
	} else {
		blobs = storage.NewMemoryStore()
		logger.Warn("S3_BUCKET not set, using in-memory object store (uploads are lost on restart)")
	}

	// Menu structure cache
	var menuCache *cache.MenuCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		menuCache = cache.NewMenuCache(rdb, cfg.MenuCacheTTL, logger)
		logger.Info("menu cache configured", "addr", cfg.RedisAddr, "ttl", cfg.MenuCacheTTL)
	}

	// Access policy and permission resolver
	policy := navigation.DefaultPolicy()
	policy.AdminRole = cfg.AdminRole
	policy.AdminUsers = cfg.AdminUsers
	resolver := navigation.NewResolver(policy)

	// Create services
	folderService := service.NewFolderService(folderRepo, fileRepo, logger)
	fileService := service.NewFileService(fileRepo, folderRepo, blobs, logger)
	menuService := service.NewMenuService(menuRepo, menuCache, logger)

	// Create handlers
	folderHandler := handler.NewFolderHandler(folderService, logger)
	fileHandler := handler.NewFileHandler(fileService, logger)
	menuHandler := handler.NewMenuHandler(menuService, resolver, logger)
	navHandler := handler.NewNavigationHandler(menuService, resolver, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Menu structure and navigation routes
	mux.HandleFunc("GET /api/menu-structure", menuHandler.GetMenuStructure)
	mux.HandleFunc("PUT /api/menu-structure", menuHandler.PublishMenuStructure)
	mux.HandleFunc("GET /api/navigation", navHandler.GetNavigation)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/hierarchy", folderHandler.GetHierarchy) // Must come before {id} route
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("GET /api/folders/{id}/files", folderHandler.ListFolderFiles)

	// File routes
	mux.HandleFunc("POST /api/files", fileHandler.UploadFile)
	mux.HandleFunc("GET /api/files/{id}/content", fileHandler.GetFileContent)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// cmd/crypto-utils-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/crypto-utils/internal/api/rest/v1"
	"github.com/MGTheTrain/crypto-utils/internal/app"
	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
	"github.com/MGTheTrain/crypto-utils/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-utils/internal/infrastructure/persistence"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Without CONFIG_PATH the defaults apply: port 8080, in-memory SQLite, RSA-2048 DER keys in ./keys
	restConfig, err := config.InitializeRestConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("failed to close database: ", err)
		}
	}()

	keyPairService, err := initializeKeyPairService(restConfig, db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, keyPairService, log)
}

// initializeKeyPairService migrates the catalogue and wires registry, repository and service
func initializeKeyPairService(cfg *config.RestConfig, db *gorm.DB, log logger.Logger) (keys.KeyPairService, error) {
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	cryptoKeyRepo, err := persistence.NewGormCryptoKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto key repository: %w", err)
	}

	opts, err := cryptography.OptionsFromSettings(cfg.Crypto)
	if err != nil {
		return nil, fmt.Errorf("invalid crypto settings: %w", err)
	}

	registry, err := cryptography.NewDefaultRegistry(log, opts...)
	if err != nil {
		return nil, err
	}

	keyPairService, err := app.NewKeyPairService(registry, cryptoKeyRepo, cfg.Crypto.KeyDir, cfg.Crypto.KeyEncoding, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair service: %w", err)
	}

	log.Info("Key pair service initialized with algorithms ", registry.Algorithms())
	return keyPairService, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, keyPairService keys.KeyPairService, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, keyPairService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

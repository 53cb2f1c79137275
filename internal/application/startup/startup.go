// Package startup handles application initialization and lifecycle
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/container"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/services"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/email"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/persistence/newsletter"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/http/server"
	"github.com/MeadowlarkTravel/meadowlark-go/pkg/config"
	"github.com/gin-gonic/gin"
)

const (
	sessionCleanupInterval = 30 * time.Minute
	shutdownTimeout        = 30 * time.Second
)

// Initialize boots the application and blocks until shutdown
func Initialize() error {
	start := time.Now().UTC()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Println("Meadowlark Travel server starting...")

	logger, err := logging.NewChanneledLogger(logging.ConfigForEnv(config.Env))
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Channeled logging initialized", "env", config.Env)

	// The order notifier degrades to a logging no-op when no email
	// credentials are configured; the checkout flow itself is unaffected.
	var notifier services.OrderNotifier
	if client, clientErr := email.NewClient(); clientErr != nil {
		logger.Startup().Warn("Email client not configured; order confirmations will be dropped",
			"error", clientErr.Error())
		notifier = email.NewDisabled(logger)
	} else {
		notifier = client
	}

	signupRepo := newsletter.NewMemoryRepository()

	appContainer := container.NewContainer(logger, signupRepo, notifier, config.UploadDir)
	logger.Startup().Info("Dependency injection container created")

	stopCleanup := make(chan struct{})
	go appContainer.SessionStore.StartCleanup(sessionCleanupInterval, stopCleanup)

	httpServer := server.New(config.Port, appContainer)
	go func() {
		if serveErr := httpServer.Start(); serveErr != nil {
			logger.System().Error("HTTP server exited", "error", serveErr.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"port", config.Port,
		"env", config.Env,
		"duration", time.Since(start).String(),
	)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	<-gracefulShutdown

	logger.Shutdown().Info("Shutdown signal received, draining...")
	close(stopCleanup)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Stop(ctx); err != nil {
		logger.Shutdown().Error("Graceful shutdown failed", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"uptime", time.Since(start).String(),
		"sessions", appContainer.SessionStore.Len(),
	)
	return logger.Close()
}

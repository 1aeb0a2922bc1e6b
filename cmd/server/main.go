package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/auth"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/config"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/database"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/db"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/handlers"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/health"
	h "github.com/MyDevVinicius/PainelAdminMinisterio/internal/http"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/middleware"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/monitoring"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/repositories"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET not found in environment or config file")
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrator := database.NewMigrator(pool, logger)
	if err := migrator.RunMigrations(ctx); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// Repositories
	clientRepo := repositories.NewClientRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	adminUserRepo := repositories.NewAdminUserRepository(pool)
	notificationRepo := repositories.NewNotificationRepository(pool)

	// Services
	clientService := services.NewClientService(clientRepo, tenantRepo, logger)
	adminUserService := services.NewAdminUserService(adminUserRepo)
	notificationService := services.NewNotificationService(notificationRepo)

	// Auth
	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Handlers
	clientHandler := handlers.NewClientHandler(clientService, logger)
	userHandler := handlers.NewUserHandler(adminUserService, logger)
	authHandler := handlers.NewAuthHandler(adminUserService, jwtManager, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)
	healthHandler := handlers.NewHealthHandler(health.NewChecker(pool))
	infrastructureHandler := handlers.NewInfrastructureHandler(monitoring.NewCollector(pool))

	router := h.NewRouter(
		clientHandler,
		userHandler,
		authHandler,
		notificationHandler,
		healthHandler,
		infrastructureHandler,
		authMiddleware,
	)

	var handler http.Handler = router
	handler = middleware.RequestLogger(logger)(handler)
	handler = middleware.NewCORS(cfg)(handler)
	handler = middleware.PanicRecovery(logger)(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

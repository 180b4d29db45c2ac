package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hello-madurai/pkg/config"
	"hello-madurai/pkg/jwt"
	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/middleware"
	"hello-madurai/pkg/push"
	"hello-madurai/pkg/queue"
	notificationHTTP "hello-madurai/services/notification/internal/controller/http"
	"hello-madurai/services/notification/internal/repo/persistent"
	"hello-madurai/services/notification/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "hello-madurai/services/notification/docs" // Swagger docs
)

const (
	subscribeRateLimit = 30
	rateLimitWindow    = time.Minute
	shutdownTimeout    = 10 * time.Second
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client, provider push.Provider) {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize Repository
	logRepo := persistent.NewNotificationLogRepository(db)

	// Initialize UseCase
	notificationUseCase := usecase.NewNotificationUseCase(logRepo, provider, log, 0)

	// Initialize HTTP handlers
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.PublicURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		pending, err := queueClient.GetQueueLength()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "pending_tasks": pending})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	admin := api.Group("/admin", middleware.AuthMiddleware(jwtService), middleware.AdminOnly())

	var subscribeLimit []gin.HandlerFunc
	if redisClient != nil {
		subscribeLimit = append(subscribeLimit, middleware.RateLimitMiddleware(redisClient, subscribeRateLimit, rateLimitWindow))
	}
	notificationHandler.Register(api, admin, subscribeLimit...)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	consumeCtx, stopConsuming := context.WithCancel(context.Background())
	defer stopConsuming()

	log.Info("Starting notification queue consumer...")
	if err := queueClient.ConsumeNotificationTasks(consumeCtx, notificationUseCase.HandleTask); err != nil {
		log.Error("Error starting notification queue consumer: %v", err)
		panic(err)
	}

	// Start server in a goroutine
	go func() {
		log.Info("Notification service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down notification service...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	stopConsuming()
	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	log.Info("Notification service exited")
}

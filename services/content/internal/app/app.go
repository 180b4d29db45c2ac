package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hello-madurai/pkg/cache"
	"hello-madurai/pkg/config"
	"hello-madurai/pkg/database"
	"hello-madurai/pkg/jwt"
	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/middleware"
	"hello-madurai/pkg/queue"
	"hello-madurai/pkg/richtext"
	"hello-madurai/pkg/s3"
	contentHTTP "hello-madurai/services/content/internal/controller/http"
	"hello-madurai/services/content/internal/repo/persistent"
	"hello-madurai/services/content/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "hello-madurai/services/content/docs" // Swagger docs
)

const (
	readerRateLimit = 300
	adminRateLimit  = 120
	rateLimitWindow = time.Minute
	multipartMemory = 8 << 20
	shutdownTimeout = 10 * time.Second
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	scheduler   *usecase.Scheduler
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithOptions(logger.Options{
		Level:   os.Getenv("LOG_LEVEL"),
		Pretty:  !cfg.IsProduction(),
		Service: "content",
	})

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without view de-duplication and rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v (uploads disabled)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without notifications)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	repos := persistent.NewRepositories(a.db)

	// Initialize use cases
	deps := usecase.Deps{
		Sanitizer: richtext.NewSanitizer(),
		PublicURL: a.cfg.PublicURL,
		Logger:    a.log,
	}
	if a.queueClient != nil {
		deps.Publisher = a.queueClient
	}
	if a.redisClient != nil {
		deps.Views = cache.NewViewTracker(a.redisClient, a.cfg.ViewDedupWindow)
	}
	catalog := usecase.NewCatalog(repos, deps)

	var uploader s3.Uploader
	if a.s3Client != nil {
		uploader = a.s3Client
	}

	handlers := contentHTTP.NewHandlers(
		catalog,
		usecase.NewAuthUseCase(repos.Admins, a.jwtService, a.log),
		usecase.NewUploadUseCase(uploader, a.cfg.MaxUploadSize, a.log),
		a.log,
	)

	scheduler, err := usecase.NewScheduler(a.cfg.PublishSchedule, a.log, catalog.Schedulable()...)
	if err != nil {
		return err
	}
	a.scheduler = scheduler
	a.scheduler.Start()

	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()
	r.MaxMultipartMemory = multipartMemory

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.PublicURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.Locale())
	guard := []gin.HandlerFunc{middleware.AuthMiddleware(a.jwtService), middleware.AdminOnly()}
	if a.redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(a.redisClient, readerRateLimit, rateLimitWindow))
		guard = append(guard, middleware.RateLimitMiddleware(a.redisClient, adminRateLimit, rateLimitWindow))
	}
	handlers.Register(api, guard...)

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Content service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down content service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	if a.queueClient != nil {
		a.queueClient.Close()
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Content service exited")
	return nil
}

package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"media-verse/pkg/cache"
	"media-verse/pkg/config"
	"media-verse/pkg/database"
	"media-verse/pkg/jwt"
	"media-verse/pkg/logger"
	"media-verse/pkg/middleware"
	"media-verse/pkg/queue"
	"media-verse/pkg/s3"
	"media-verse/pkg/session"
	socialHTTP "media-verse/services/social/internal/controller/http"
	"media-verse/services/social/internal/repo/persistent"
	"media-verse/services/social/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "media-verse/services/social/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	sessions    *session.Provider
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithLevel(cfg.LogLevel).With("service", "social")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Without Redis revoked bearer tokens cannot be detected, so refuse to start.
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)
	sessions := session.NewProvider(
		jwtService,
		session.NewCookieStore(cfg.SessionSecret, cfg.CookieSecure),
		cfg.SessionName,
		redisClient,
		log,
	)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		queueClient: queueClient,
		sessions:    sessions,
	}, nil
}

func (a *App) Run() error {
	limits := usecase.PostLimits{
		MaxImages: a.cfg.MaxImagesPerPost,
		MaxVideos: a.cfg.MaxVideosPerPost,
	}

	// A nil *queue.Client must not end up inside a non-nil interface.
	var publisher usecase.EventPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	// Initialize repositories
	postRepo := persistent.NewPostRepository(a.db)
	engagementRepo := persistent.NewEngagementRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	searchRepo := persistent.NewSearchRepository(a.db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, a.s3Client, publisher, limits, a.log)
	mediaUseCase := usecase.NewMediaUseCase(a.s3Client, limits, a.log)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, postRepo, publisher, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, publisher, a.log)
	searchUseCase := usecase.NewSearchUseCase(searchRepo, a.cfg.SearchLimit)

	// Initialize HTTP handlers
	postHandler := socialHTTP.NewPostHandler(postUseCase, mediaUseCase, a.cfg.MaxUploadBytes, a.log)
	engagementHandler := socialHTTP.NewEngagementHandler(engagementUseCase, a.log)
	commentHandler := socialHTTP.NewCommentHandler(commentUseCase, a.log)
	searchHandler := socialHTTP.NewSearchHandler(searchUseCase, a.log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("")
	public.Use(middleware.OptionalAuth(a.sessions))
	{
		public.GET("/posts", postHandler.ListPosts)
		public.GET("/posts/:id", postHandler.GetPost)
		public.GET("/posts/:id/comments", commentHandler.ListComments)
		public.GET("/users/:id/posts", postHandler.UserPosts)
		public.GET("/search", searchHandler.Search)
	}

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(a.sessions))
	{
		protected.POST("/posts/create", postHandler.CreatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)
		protected.GET("/posts/mine", postHandler.MyPosts)
		protected.POST("/posts/:id/like", engagementHandler.LikePost)
		protected.POST("/posts/:id/share", engagementHandler.SharePost)
		protected.GET("/posts/liked", engagementHandler.LikedPosts)
		protected.GET("/posts/shared", engagementHandler.SharedPosts)
		protected.POST("/posts/:id/comment", commentHandler.AddComment)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Social service starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down social service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis: %v", err)
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Social service exited")
	_ = a.log.Sync()
	return nil
}

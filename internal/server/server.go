// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	_ "mentorly/docs" // swagger docs
	"mentorly/internal/cache"
	"mentorly/internal/config"
	"mentorly/internal/events"
	"mentorly/internal/middleware"
	"mentorly/internal/models"
	"mentorly/internal/repository"
	"mentorly/internal/service"
	"mentorly/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
)

// PostService is the set of achievement post operations the handlers use.
type PostService interface {
	Save(ctx context.Context, post *models.AchievementPost) (*models.AchievementPost, error)
	FindAll(ctx context.Context) ([]models.AchievementPost, error)
	FindByID(ctx context.Context, id string) (*models.AchievementPost, error)
	Update(ctx context.Context, post *models.AchievementPost) (*models.AchievementPost, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, postID, userID, userName string) (*models.AchievementPost, error)
	RemoveLike(ctx context.Context, postID, userID string) (*models.AchievementPost, error)
	AddComment(ctx context.Context, postID string, comment models.Comment) (*models.AchievementPost, error)
	UpdateComment(ctx context.Context, postID, commentID, content string) (*models.AchievementPost, error)
	DeleteComment(ctx context.Context, postID, commentID string) (*models.AchievementPost, error)
	FindByUserID(ctx context.Context, userID string) ([]models.AchievementPost, error)
	FindLikedByUser(ctx context.Context, userID string) ([]models.AchievementPost, error)
	Ping(ctx context.Context) error
}

// FileStore persists uploaded files and returns their public URL.
type FileStore interface {
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	postService    PostService
	files          FileStore
	uploadDir      string
	publisher      events.Publisher
	closers        []func(context.Context) error
}

// NewServer creates a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	repo, closeDB, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	publisher, err := events.NewPublisher(cfg.NATSURL)
	if err != nil {
		// Events are best effort; the API keeps serving without a broker.
		middleware.Logger.Warn("NATS unavailable, events disabled", slog.String("error", err.Error()))
		publisher = events.NoopPublisher{}
	}

	files, err := storage.NewFileStorage(cfg.UploadDir, cfg.UploadPublicBaseURL, int64(cfg.UploadMaxSizeMB)<<20)
	if err != nil {
		return nil, err
	}

	svc := service.NewAchievementPostService(repository.NewCachedRepository(repo), publisher)
	s := NewServerWithDeps(cfg, svc, files, redisClient, publisher)
	s.uploadDir = files.Dir()
	s.closers = []func(context.Context) error{closeDB}
	return s, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer wires the store itself.
func NewServerWithDeps(cfg *config.Config, svc PostService, files FileStore, redisClient *redis.Client, publisher events.Publisher) *Server {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Server{
		config:         cfg,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("mentorly-api"),
		postService:    svc,
		files:          files,
		uploadDir:      cfg.UploadDir,
		publisher:      publisher,
	}
}

// NewApp builds the Fiber app with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Mentorly API",
		BodyLimit:    (s.config.UploadMaxSizeMB + 1) << 20,
		ErrorHandler: errorHandler,
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(requestid.New())

	// Tracing must run before ContextMiddleware so the trace id reaches the logger.
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Uploaded images are embedded by the web client from another origin.
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	v1.Get("/health", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Mentorly Backend Metrics Dashboard",
	}))

	api.Get("/swagger/*", swagger.HandlerDefault)

	if s.uploadDir != "" {
		app.Static("/uploads", s.uploadDir)
	}

	v1.Post("/upload", middleware.RateLimit(s.redis, 20, time.Minute, "upload"), s.UploadFile)

	posts := v1.Group("/achievement-posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreateAchievementPost)
	posts.Get("/", s.GetAchievementPosts)
	// Fixed paths must be registered before the generic /:id route.
	posts.Get("/user/:userId", s.GetPostsByUser)
	posts.Get("/me", s.GetMyPosts)
	posts.Get("/feed", s.GetFeed)
	posts.Get("/liked", s.GetLikedPosts)
	posts.Post("/:id/like", s.LikeAchievementPost)
	posts.Delete("/:id/like", s.UnlikeAchievementPost)
	posts.Post("/:id/comments", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_comment"), s.AddComment)
	posts.Put("/:id/comments/:commentId", s.UpdateComment)
	posts.Delete("/:id/comments/:commentId", s.DeleteComment)
	posts.Get("/:id", s.GetAchievementPost)
	posts.Put("/:id", s.UpdateAchievementPost)
	posts.Delete("/:id", s.DeleteAchievementPost)
}

// HealthCheck answers the web client's connectivity probe.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "UP"})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := s.postService.Ping(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis only backs the cache, so its absence does not fail readiness.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the app and listens on the configured port.
func (s *Server) Start() error {
	app := s.NewApp()
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if s.publisher != nil {
		s.publisher.Close()
	}

	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil {
			middleware.Logger.Error("error closing database", slog.String("error", err.Error()))
		}
	}

	if err := cache.Close(); err != nil {
		middleware.Logger.Error("error closing redis", slog.String("error", err.Error()))
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}

// errorHandler renders errors that handlers return instead of writing themselves.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return models.RespondWithError(c, fiberErr.Code, err)
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	middleware.Logger.ErrorContext(c.UserContext(), "request error", slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

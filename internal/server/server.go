// Package server contains the fiber application, routes, and HTML
// handlers.
package server

import (
	"context"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config   *config.Config
	db       *gorm.DB
	redis    *redis.Client
	sessions *session.Manager
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
	views    *Views
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	var store session.Store
	if redisClient != nil {
		store = session.NewRedisStore(redisClient)
	} else {
		store = session.NewMemoryStore()
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	views, err := NewViews()
	if err != nil {
		return nil, err
	}

	return &Server{
		config:   cfg,
		db:       db,
		redis:    redisClient,
		sessions: session.NewManager(cfg.SessionSecret, cfg.SessionTTL, store, userRepo),
		users:    service.NewUserService(userRepo),
		posts:    service.NewPostService(postRepo),
		comments: service.NewCommentService(commentRepo, postRepo),
		views:    views,
	}, nil
}

// SetupMiddleware configures middleware for the fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())
	app.Use(middleware.Tracing())

	prometheus := fiberprometheus.New("inkwell")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Index)
	app.Get("/about", s.About)
	app.Get("/healthz", s.Healthz)

	app.Get("/register", s.RegisterPage)
	app.Post("/register", s.Register)
	app.Get("/login", s.LoginPage)
	app.Post("/login", s.Login)
	app.Get("/logout", s.Logout)

	app.Get("/new-post", s.NewPostPage)
	app.Post("/new-post", s.CreatePost)
	app.Get("/edit-post/:id", s.EditPostPage)
	app.Post("/edit-post/:id", s.UpdatePost)
	app.Post("/delete/:id", s.DeletePost)

	app.Get("/post/:id", s.ShowPost)
	app.Post("/post/:id/comments", s.CreateComment)
}

// Healthz reports database and redis health.
func (s *Server) Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": dbStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// currentActor resolves the session cookie to a User, or nil when the
// request is anonymous.
func (s *Server) currentActor(c *fiber.Ctx) *models.User {
	token := c.Cookies(sessionCookieName)
	if token == "" {
		return nil
	}
	user, err := s.sessions.Resolve(c.UserContext(), token)
	if err != nil {
		observability.Logger.Error("session resolve failed", "error", err)
		return nil
	}
	if user != nil {
		c.Locals("userID", user.ID)
	}
	return user
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			observability.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			observability.Logger.Error("error closing redis", "error", rerr)
		}
	}

	observability.Logger.Info("Server shutdown complete")
	return nil
}

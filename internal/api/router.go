package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pressroom/publishing-api/docs"
	"github.com/pressroom/publishing-api/internal/api/handler"
	"github.com/pressroom/publishing-api/internal/api/middleware"
	"github.com/pressroom/publishing-api/internal/core/service"
	"github.com/pressroom/publishing-api/internal/infrastructure/config"
	mongodb "github.com/pressroom/publishing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pressroom/publishing-api/internal/infrastructure/db/redis"
	"github.com/pressroom/publishing-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	activity service.ActivityPublisher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("publishing"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	popularCache := redisdb.NewPopularCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, log)
	articleService := service.NewArticleService(articleRepo, commentRepo, userRepo, popularCache, activity, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	articleHandler := handler.NewArticleHandler(articleService)

	authGuard := middleware.Auth(tokenService)
	adminGuard := middleware.AdminOnly(userRepo)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	api.GET("/users", userHandler.List, authGuard, adminGuard)
	api.PUT("/users/:userId", userHandler.UpdateRole, authGuard, adminGuard)
	api.GET("/users/:userId/articles", articleHandler.ListByAuthor, authGuard)

	api.GET("/articles/popular", articleHandler.ListPopular)
	api.POST("/articles", articleHandler.Create, authGuard)
	api.GET("/articles", articleHandler.List, authGuard)
	api.GET("/articles/:articleId", articleHandler.Get, authGuard)
	api.DELETE("/articles/:articleId", articleHandler.Delete, authGuard)
	api.POST("/articles/:articleId/comments", articleHandler.AddComment, authGuard)
	api.POST("/articles/:articleId/like", articleHandler.Like, authGuard)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}

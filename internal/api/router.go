package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sellerhub/sellerhub-api/docs"
	"github.com/sellerhub/sellerhub-api/internal/api/handler"
	"github.com/sellerhub/sellerhub-api/internal/api/middleware"
	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/service"
	"github.com/sellerhub/sellerhub-api/internal/infrastructure/config"
	mongodb "github.com/sellerhub/sellerhub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sellerhub/sellerhub-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Services are constructed here and injected explicitly; nothing holds global
// mutable state, so every gate stays independently testable.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sellerhub"))

	// --- Dependencies ---
	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	hasher := service.NewBcryptHasher()
	userRepo := mongodb.NewUserRepository(db)
	loginGuard := redisdb.NewLoginGuard(rdb)
	authService := service.NewAuthService(userRepo, hasher, tokens, loginGuard, log)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongodb.NewProductRepository(db)
	productService := service.NewProductService(productRepo, log)
	productHandler := handler.NewProductHandler(productService)

	userHandler := handler.NewUserHandler()
	auth := middleware.Auth(tokens)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	e.GET("/users/me", userHandler.Me, auth)
	e.GET("/users/admin", userHandler.AdminOnly, auth, middleware.RequireRoles(domain.RoleAdmin))

	// --- Product routes (all authenticated, scoped to the caller) ---
	products := e.Group("/products", auth)
	products.GET("", productHandler.List)
	products.GET("/search", productHandler.Search)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

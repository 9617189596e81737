// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"amica/internal/cache"
	"amica/internal/config"
	"amica/internal/middleware"
	"amica/internal/models"
	"amica/internal/service"
	"amica/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const (
	tokenIssuer   = "amica-api"
	tokenAudience = "amica-client"
	tokenLifetime = 24 * time.Hour
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          *store.Store
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userService          *service.UserService
	lostItemService      *service.LostItemService
	foundItemService     *service.FoundItemService
	borrowRequestService *service.BorrowRequestService
	lendItemService      *service.LendItemService
	activityService      *service.ActivityService
	postService          *service.PostService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize the record store on disk
	st := store.NewFileStore(cfg.DataDir)
	for _, name := range store.AllCollections() {
		if err := st.EnsureCollection(name); err != nil {
			return nil, fmt.Errorf("store initialization failed: %w", err)
		}
	}

	// Initialize Redis (optional; rate limiting fails open without it)
	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, st, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store and Redis.
func NewServerWithDeps(cfg *config.Config, st *store.Store, redisClient *redis.Client) (*Server, error) {
	prom := middleware.InitMetrics("amica-api")

	server := &Server{
		config:         cfg,
		store:          st,
		redis:          redisClient,
		promMiddleware: prom,
	}
	server.userService = service.NewUserService(st)
	server.lostItemService = service.NewLostItemService(st)
	server.foundItemService = service.NewFoundItemService(st)
	server.borrowRequestService = service.NewBorrowRequestService(st)
	server.lendItemService = service.NewLendItemService(st)
	server.activityService = service.NewActivityService(st)
	server.postService = service.NewPostService(st)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:8081"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
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
	app.Get("/", s.Welcome)

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	// Legacy alias: map /health to readiness (keeps existing scripts working)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Amica Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)

	// Everything below requires a valid token
	protected := api.Group("", s.AuthRequired())

	users := protected.Group("/users")
	users.Get("/profile/:id", s.GetProfile)
	users.Put("/profile/:id", s.UpdateProfile)

	lostItems := protected.Group("/lost-items")
	lostItems.Post("/", s.CreateLostItem)
	lostItems.Get("/", s.GetLostItems)
	lostItems.Get("/:id", s.GetLostItem)
	lostItems.Put("/:id", s.UpdateLostItem)
	lostItems.Delete("/:id", s.DeleteLostItem)

	foundItems := protected.Group("/found-items")
	foundItems.Post("/", s.CreateFoundItem)
	foundItems.Get("/", s.GetFoundItems)
	foundItems.Get("/:id", s.GetFoundItem)
	foundItems.Put("/:id", s.UpdateFoundItem)
	foundItems.Delete("/:id", s.DeleteFoundItem)

	borrowItems := protected.Group("/borrow-items")
	borrowItems.Post("/", s.CreateBorrowRequest)
	borrowItems.Get("/", s.GetBorrowRequests)
	borrowItems.Get("/:id", s.GetBorrowRequest)
	borrowItems.Put("/:id", s.UpdateBorrowRequest)
	borrowItems.Delete("/:id", s.DeleteBorrowRequest)

	lendItems := protected.Group("/lend-items")
	lendItems.Post("/", s.CreateLendItem)
	lendItems.Get("/", s.GetLendItems)
	lendItems.Get("/:id", s.GetLendItem)
	lendItems.Put("/:id", s.UpdateLendItem)
	lendItems.Delete("/:id", s.DeleteLendItem)

	activities := protected.Group("/activities")
	activities.Post("/", s.CreateActivity)
	activities.Get("/", s.GetActivities)
	// Define specific /:id/:action routes BEFORE generic /:id routes
	activities.Post("/:id/join", s.JoinActivity)
	activities.Post("/:id/leave", s.LeaveActivity)
	activities.Get("/:id", s.GetActivity)
	activities.Put("/:id", s.UpdateActivity)
	activities.Delete("/:id", s.DeleteActivity)

	posts := protected.Group("/posts")
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.GetPosts)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)
}

// Welcome handles GET / with a short greeting so a bare hit on the API root
// confirms the service is up.
func (s *Server) Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Amica Network API",
	})
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
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	storeStatus := "healthy"
	if err := s.store.Ready(); err != nil {
		storeStatus = "unhealthy"
	}

	// Redis is optional; rate limiting fails open without it, so a missing
	// client does not make the service unready.
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
	if storeStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"store": storeStatus,
			"redis": redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. On success it stores
// the caller's id, the sanitized account record, and the raw token in the
// request locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		// Parse and validate token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		// The token may outlive the account; resolve it on every request.
		user, err := s.userService.GetByID(c.Context(), sub)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Account no longer exists"))
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user.WithoutPassword())
		c.Locals("token", tokenString)

		// Sync to the request context for logging in deeper layers
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return fmt.Errorf("redis close failed: %w", err)
		}
	}
	return nil
}

package server

import (
	"time"

	"shopcart/internal/handlers"
	"shopcart/internal/middleware"
	"shopcart/internal/repositories"
	"shopcart/internal/services"
	"shopcart/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options carries the settings the HTTP layer needs.
type Options struct {
	JWTSecret   string
	JWTValidity time.Duration
	// Publisher receives catalog events; nil disables publishing.
	Publisher services.EventPublisher
	// RequestLogging enables the access log middleware.
	RequestLogging bool
}

// New wires repositories, services and handlers into a Fiber app.
func New(db *gorm.DB, opts Options) *fiber.App {
	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	customerRepo := repositories.NewGORMCustomerRepository(db)
	cartRepo := repositories.NewGORMCartItemRepository(db)

	// --- Services ---
	tokens := services.NewTokenProvider(opts.JWTSecret, opts.JWTValidity)
	productService := services.NewProductService(productRepo, opts.Publisher)
	customerService := services.NewCustomerService(customerRepo)
	authService := services.NewAuthService(customerRepo, tokens)
	cartService := services.NewCartService(cartRepo, productRepo)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	pageHandler := handlers.NewPageHandler(productService)
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	cartHandler := handlers.NewCartHandler(cartService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		Views:        views.NewEngine(),
	})

	// --- Middleware ---
	app.Use(recover.New())
	if opts.RequestLogging {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	pageHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	productHandler.RegisterAdminRoutes(app.Group("/admin"))
	authHandler.RegisterRoutes(app)
	customerHandler.RegisterRoutes(app)

	// Protected routes (require a bearer token of an existing customer)
	auth := middleware.AuthRequired(tokens, authService)
	customerHandler.RegisterProtectedRoutes(app.Group("/customers/me", auth))
	cartHandler.RegisterRoutes(app.Group("/cart", auth))

	return app
}

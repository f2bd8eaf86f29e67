package app

import (
	"time"

	"stockroom/internal/config"
	"stockroom/internal/handlers"
	"stockroom/internal/middleware"
	"stockroom/internal/repositories"
	"stockroom/internal/services"
	"stockroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps are the collaborators New wires into the HTTP application.
// Publisher and Denylist are optional.
type Deps struct {
	DB        *gorm.DB
	Logger    logrus.FieldLogger
	Publisher services.EventPublisher
	Denylist  services.TokenDenylist
}

// New builds the Fiber application with every route registered under
// cfg.APIPrefix.
func New(cfg *config.Config, deps Deps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	opts := []services.Option{
		services.WithLogger(log),
		services.WithTokenTTL(cfg.TokenTTL),
	}
	if deps.Publisher != nil {
		opts = append(opts, services.WithEventPublisher(deps.Publisher))
	}
	if deps.Denylist != nil {
		opts = append(opts, services.WithTokenDenylist(deps.Denylist))
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	stockRepo := repositories.NewGORMStockRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, opts...)
	userService := services.NewUserService(userRepo, opts...)
	productService := services.NewProductService(productRepo, opts...)
	stockService := services.NewStockService(stockRepo, productRepo, opts...)

	// --- Handlers ---
	v := validation.New()
	authHandler := handlers.NewAuthHandler(authService, v, log)
	userHandler := handlers.NewUserHandler(authService, userService, v, log)
	productHandler := handlers.NewProductHandler(productService, v, log)
	stockHandler := handlers.NewStockHandler(stockService, v, log)

	app := fiber.New(fiber.Config{
		AppName:               "stockroom",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group(cfg.APIPrefix)
	auth := middleware.AuthRequired(authService, log)

	authHandler.RegisterRoutes(api, auth)
	userHandler.RegisterRoutes(api, auth)
	productHandler.RegisterRoutes(api, auth)
	stockHandler.RegisterRoutes(api, auth)

	return app
}

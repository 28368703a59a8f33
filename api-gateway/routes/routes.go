package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kemasindo/storefront/api-gateway/config"
	"github.com/kemasindo/storefront/api-gateway/health"
	"github.com/kemasindo/storefront/api-gateway/middleware"
	"github.com/kemasindo/storefront/api-gateway/proxy"
)

// AuthMode selects which auth middleware guards a route prefix.
type AuthMode string

const (
	AuthNone     AuthMode = "none"     // public
	AuthOptional AuthMode = "optional" // token validated when present, anonymous allowed
	AuthRequired AuthMode = "required" // valid token mandatory
	AuthAdmin    AuthMode = "admin"    // valid token with admin role
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	Auth        AuthMode
}

// Routes holds all route definitions. Catalog browsing and price estimates
// are public. Cart routes use optional auth so the cart service itself can
// answer anonymous mutations with its sign-in redirect.
var Routes = []RouteDefinition{
	{
		Prefix:      "/auth",
		ServiceName: "auth",
		Description: "Sign-in pages and session endpoints",
		Auth:        AuthNone,
	},
	{
		Prefix:      "/api/auth",
		ServiceName: "auth",
		Description: "Session API (login, me, logout)",
		Auth:        AuthNone,
	},
	{
		Prefix:      "/api/products",
		ServiceName: "catalog",
		Description: "Catalog listing, categories, price estimates",
		Auth:        AuthOptional,
	},
	{
		Prefix:      "/api/cart",
		ServiceName: "cart",
		Description: "Cart contents and mutations",
		Auth:        AuthOptional,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Create health checker
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Kemasindo Storefront Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	// Create handler function
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	// Apply middleware based on route requirements
	var middlewares []fiber.Handler

	switch route.Auth {
	case AuthAdmin:
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	case AuthRequired:
		middlewares = append(middlewares, middleware.AuthMiddleware())
	case AuthOptional:
		middlewares = append(middlewares, middleware.OptionalAuthMiddleware())
	}
	// Public routes have no middleware

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}

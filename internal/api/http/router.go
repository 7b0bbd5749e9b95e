package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/auth-service/internal/api/http/handlers"
	"github.com/spec-kit/auth-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Trailing slashes are optional.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Post("/signup", cfg.Users.Signup)
	app.Post("/login", cfg.Users.Login)
	app.Post("/logout", cfg.Users.Logout)

	profile := app.Group("/profile", cfg.AuthMiddleware.Handle)
	profile.Get("/:id", cfg.Profile.Get)
	profile.Put("/:id", cfg.Profile.Update)
	profile.Delete("/:id", cfg.Profile.Delete)
}

package routes

import (
	"breakfast4u-web/internal/api/handlers"
	"breakfast4u-web/internal/middleware"
	"breakfast4u-web/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	AuthHandler      handlers.AuthHandler
	MenuHandler      handlers.MenuHandler
	StoreHandler     handlers.StoreHandler
	ContactHandler   handlers.ContactHandler
	DashboardHandler handlers.DashboardHandler
	Middleware       middleware.Middleware
	Sessions         session.Manager
	SessionCookie    string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Storefront()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/signup", c.AuthHandler.Register)
		auth.Post("/signin", c.AuthHandler.Login)
		auth.Post("/logout", c.sessionGuard(), c.AuthHandler.Logout)
		auth.Get("/me", c.sessionGuard(), c.AuthHandler.Me)
	}
}

func (c *Config) Storefront() {
	c.App.Get("/api/v1/menu", c.MenuHandler.GetMenu)
	c.App.Get("/api/v1/stores", c.StoreHandler.GetStores)
	c.App.Post("/api/v1/contact", c.ContactHandler.SubmitContactForm)
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.sessionGuard(), c.Middleware.OwnerOnly())

	dashboard.Get("/meals", c.DashboardHandler.GetMeals)
	dashboard.Post("/meals", c.DashboardHandler.CreateMeal)
	dashboard.Put("/meals/:id", c.DashboardHandler.UpdateMeal)
	dashboard.Delete("/meals/:id", c.DashboardHandler.DeleteMeal)
	dashboard.Post("/meals/:id/toggle", c.DashboardHandler.ToggleAvailability)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}

func (c *Config) sessionGuard() fiber.Handler {
	return c.Middleware.SessionMiddleware(c.Sessions, c.SessionCookie)
}

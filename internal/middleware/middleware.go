package middleware

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/internal/api/presenters"
	"breakfast4u-web/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SessionMiddleware(manager session.Manager, cookieName string) fiber.Handler
		OwnerOnly() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// SessionMiddleware resolves the session cookie and stores the session in
// locals. Missing or expired sessions answer 401 with a sign-in redirect
// target; the view must stay re-enterable, so nothing is fatal.
func (m *middleware) SessionMiddleware(manager session.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if id == "" {
			return unauthorized(c, domain.ErrSessionNotFound)
		}

		sess, err := manager.Get(id)
		if err != nil {
			return unauthorized(c, err)
		}

		c.Locals("session", sess)
		return c.Next()
	}
}

// OwnerOnly rejects sessions whose user is not a store owner. Runs after
// SessionMiddleware.
func (m *middleware) OwnerOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := c.Locals("session").(*session.Session)
		if sess.User.Role != domain.RoleOwner {
			c.Set("X-Redirect", "/")
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrOwnerAccountRequired)
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, err error) error {
	c.Set("X-Redirect", "/signin")
	return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetUser, err)
}

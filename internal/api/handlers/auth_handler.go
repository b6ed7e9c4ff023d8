package handlers

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/internal/api/presenters"
	"breakfast4u-web/pkg/api"
	"breakfast4u-web/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	authHandler struct {
		client     api.Client
		sessions   session.Manager
		validator  *validator.Validate
		cookieName string
	}
)

func NewAuthHandler(client api.Client, sessions session.Manager, validator *validator.Validate, cookieName string) AuthHandler {
	return &authHandler{
		client:     client,
		sessions:   sessions,
		validator:  validator,
		cookieName: cookieName,
	}
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.client.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedRegister, err)
	}

	sess, err := h.sessions.Create(res.Token, res.User)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}
	h.setSessionCookie(c, sess.ID)

	return presenters.SuccessResponse(c, res.User, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.client.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
	}

	sess, err := h.sessions.Create(res.Token, res.User)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}
	h.setSessionCookie(c, sess.ID)

	return presenters.SuccessResponse(c, res.User, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	sess := c.Locals("session").(*session.Session)

	// Best effort against the remote API; the local session goes away
	// either way.
	_ = h.client.Logout(c.Context(), sess.Token)

	if err := h.sessions.Destroy(sess.ID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	c.ClearCookie(h.cookieName)

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	sess := c.Locals("session").(*session.Session)

	user, err := h.client.CurrentUser(c.Context(), sess.Token)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, user, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *authHandler) setSessionCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    id,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

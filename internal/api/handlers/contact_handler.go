package handlers

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/internal/api/presenters"
	"breakfast4u-web/pkg/api"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ContactHandler interface {
		SubmitContactForm(c *fiber.Ctx) error
	}

	contactHandler struct {
		client    api.Client
		validator *validator.Validate
	}
)

func NewContactHandler(client api.Client, validator *validator.Validate) ContactHandler {
	return &contactHandler{
		client:    client,
		validator: validator,
	}
}

func (h *contactHandler) SubmitContactForm(c *fiber.Ctx) error {
	req := new(domain.ContactRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedContact, err)
	}

	if err := h.client.SubmitContactForm(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedContact, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessContact)
}

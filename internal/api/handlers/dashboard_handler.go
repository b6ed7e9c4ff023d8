package handlers

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/internal/api/presenters"
	"breakfast4u-web/pkg/owner"
	"breakfast4u-web/pkg/session"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetMeals(c *fiber.Ctx) error
		CreateMeal(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		ToggleAvailability(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		mealService owner.MealService
	}
)

func NewDashboardHandler(mealService owner.MealService) DashboardHandler {
	return &dashboardHandler{
		mealService: mealService,
	}
}

func (h *dashboardHandler) GetMeals(c *fiber.Ctx) error {
	sess := c.Locals("session").(*session.Session)
	tab := c.Query("tab", domain.TimeMorning)

	h.mealService.Refresh(c.Context(), sess)

	return presenters.SuccessResponse(c, fiber.Map{
		"items":  h.mealService.Meals(sess, tab),
		"tab":    tab,
		"state":  h.mealService.Status(sess),
		"error":  h.mealService.LoadError(sess),
		"notice": h.mealService.Notice(sess),
	}, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

// CreateMeal's time of day is never user-chosen; it comes from the active
// dashboard tab.
func (h *dashboardHandler) CreateMeal(c *fiber.Ctx) error {
	sess := c.Locals("session").(*session.Session)
	tab := c.Query("tab", domain.TimeMorning)

	form := new(domain.MealForm)
	if err := c.BodyParser(form); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.mealService.Create(c.Context(), sess, *form, tab); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreateMeal)
}

func (h *dashboardHandler) UpdateMeal(c *fiber.Ctx) error {
	sess := c.Locals("session").(*session.Session)
	tab := c.Query("tab", domain.TimeMorning)
	mealID := c.Params("id")

	form := new(domain.MealForm)
	if err := c.BodyParser(form); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.mealService.Update(c.Context(), sess, mealID, *form, tab); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

// DeleteMeal refuses to act without confirm=true, the API form of the
// browser's confirm dialog.
func (h *dashboardHandler) DeleteMeal(c *fiber.Ctx) error {
	sess := c.Locals("session").(*session.Session)
	mealID := c.Params("id")
	confirmed := c.QueryBool("confirm")

	if err := h.mealService.Delete(c.Context(), sess, mealID, confirmed); err != nil {
		if errors.Is(err, domain.ErrDeleteNotConfirmed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *dashboardHandler) ToggleAvailability(c *fiber.Ctx) error {
	sess := c.Locals("session").(*session.Session)
	mealID := c.Params("id")

	if err := h.mealService.ToggleAvailability(c.Context(), sess, mealID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleAvailability, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

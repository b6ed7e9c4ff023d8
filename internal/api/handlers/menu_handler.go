package handlers

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"breakfast4u-web/internal/api/presenters"
	"breakfast4u-web/pkg/api"
	"breakfast4u-web/pkg/catalog"
	"breakfast4u-web/pkg/listview"
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenu(c *fiber.Ctx) error
	}

	menuHandler struct {
		controller *listview.Controller[entities.Meal]
	}
)

func NewMenuHandler(client api.Client) MenuHandler {
	return &menuHandler{
		controller: listview.NewController(func(ctx context.Context) ([]entities.Meal, error) {
			return client.ListPublicMeals(ctx, url.Values{"limit": {"100"}})
		}),
	}
}

// GetMenu loads the public menu and applies the active selections. A failed
// fetch keeps whatever was loaded before, so the page renders the last good
// list next to the error banner.
func (h *menuHandler) GetMenu(c *fiber.Ctx) error {
	h.controller.Load(c.Context())

	query := catalog.MealQuery{
		Search:    c.Query("q"),
		Category:  c.Query("category", domain.AllCategories),
		TimeOfDay: c.Query("time", domain.AnyTime),
		SortBy:    catalog.SortOption(c.Query("sort", string(catalog.SortHighestRated))),
	}

	meals := h.controller.Items()
	items := catalog.Meals(meals, query)

	return presenters.SuccessResponse(c, fiber.Map{
		"items":   items,
		"showing": len(items),
		"total":   len(meals),
		"store":   c.Query("store"),
		"state":   h.controller.Status(),
		"error":   h.controller.Err(),
	}, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

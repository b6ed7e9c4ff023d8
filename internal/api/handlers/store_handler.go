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
	StoreHandler interface {
		GetStores(c *fiber.Ctx) error
	}

	storeHandler struct {
		controller *listview.Controller[entities.Store]
	}
)

func NewStoreHandler(client api.Client) StoreHandler {
	return &storeHandler{
		controller: listview.NewController(func(ctx context.Context) ([]entities.Store, error) {
			return client.ListStores(ctx, url.Values{"limit": {"100"}})
		}),
	}
}

func (h *storeHandler) GetStores(c *fiber.Ctx) error {
	h.controller.Load(c.Context())

	query := catalog.StoreQuery{
		Search:   c.Query("q"),
		Area:     c.Query("area", domain.AllAreas),
		OpenNow:  c.QueryBool("open"),
		Category: c.Query("category"),
	}

	stores := h.controller.Items()
	items := catalog.FilterStores(stores, query)

	return presenters.SuccessResponse(c, fiber.Map{
		"items":    items,
		"found":    len(items),
		"total":    len(stores),
		"category": query.Category,
		"state":    h.controller.Status(),
		"error":    h.controller.Err(),
	}, fiber.StatusOK, domain.MessageSuccessGetStores)
}

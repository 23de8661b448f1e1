package controller

import (
	"strconv"

	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/internal/pkg/serverutils"
	"vendai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("search", c.Search)
	h.Get("categories", c.Categories)
	h.Get("products", c.List)
}

func (c *catalogController) Search(ctx *fiber.Ctx) error {
	req := dto.SearchCatalogRequest{
		Query:    ctx.Query("q"),
		Category: ctx.Query("category"),
	}
	if req.Query == "" {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, "Query parameter 'q' is required"))
	}

	if raw := ctx.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MinPrice = &v
		}
	}
	if raw := ctx.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MaxPrice = &v
		}
	}

	res := c.catalogService.Search(&req)
	return ctx.JSON(serverutils.SuccessResponse("Catalog search results", res))
}

func (c *catalogController) Categories(ctx *fiber.Ctx) error {
	res := c.catalogService.Categories()
	return ctx.JSON(serverutils.SuccessResponse("Catalog categories", res))
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	res := c.catalogService.List()
	return ctx.JSON(serverutils.SuccessResponse("Catalog products", res))
}

package controller

import (
	"encoding/json"

	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/internal/pkg/serverutils"
	"vendai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	publisherService service.IPublisherService
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(publisherService service.IPublisherService, knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		publisherService: publisherService,
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Post("", c.Ingest)
	h.Get("", c.List)
	h.Delete(":id", c.Remove)
}

// Ingest queues a knowledge snippet; embedding happens asynchronously in the
// consumer.
func (c *knowledgeController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if err := c.publisherService.Publish(ctx.Context(), payload); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Knowledge queued for embedding", dto.IngestKnowledgeResponse{Queued: true}))
}

func (c *knowledgeController) List(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.List(
		ctx.Context(),
		ctx.Query("scope"),
		ctx.QueryInt("limit", 0),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge entries", res))
}

func (c *knowledgeController) Remove(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, "Invalid knowledge entry id"))
	}

	removed, err := c.knowledgeService.Remove(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !removed {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse(404, "Knowledge entry not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge entry removed", fiber.Map{"id": id.String()}))
}

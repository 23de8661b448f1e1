package controller

import (
	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/internal/pkg/serverutils"
	"vendai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	HandleMessage(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type webhookController struct {
	chatService  service.IChatService
	webhookToken string
}

func NewWebhookController(chatService service.IChatService, webhookToken string) IWebhookController {
	return &webhookController{
		chatService:  chatService,
		webhookToken: webhookToken,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhook/v1")
	h.Use(c.verifyToken)
	h.Post("message", c.HandleMessage)
	h.Get("history", c.History)
}

// verifyToken gates the webhook behind a shared secret when one is
// configured.
func (c *webhookController) verifyToken(ctx *fiber.Ctx) error {
	if c.webhookToken == "" {
		return ctx.Next()
	}
	if ctx.Get("X-Webhook-Token") != c.webhookToken {
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(serverutils.ErrorResponse(401, "Invalid webhook token"))
	}
	return ctx.Next()
}

func (c *webhookController) HandleMessage(ctx *fiber.Ctx) error {
	var req dto.IncomingMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.chatService.HandleMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Reply generated", res))
}

// History exposes the persisted transcript for operator tooling. It sits
// behind the same token gate as the message webhook.
func (c *webhookController) History(ctx *fiber.Ctx) error {
	phone := ctx.Query("phone")
	if phone == "" {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, "Query parameter 'phone' is required"))
	}

	res, err := c.chatService.History(ctx.Context(), phone, ctx.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

package controller

import (
	"errors"

	"medisos-be/internal/dto"
	"medisos-be/internal/pkg/serverutils"
	"medisos-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	EndSession(ctx *fiber.Ctx) error
	GetSessionMessages(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService    service.IChatService
	summaryService service.ISummaryService
}

func NewChatController(chatService service.IChatService, summaryService service.ISummaryService) IChatController {
	return &chatController{
		chatService:    chatService,
		summaryService: summaryService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	// Chat works anonymously; a valid token just enriches the prompt.
	h.Post("/", serverutils.OptionalJwtMiddleware, c.SendChat)
	h.Post("/end", serverutils.OptionalJwtMiddleware, c.EndSession)
	h.Get("/:sessionId/messages", c.GetSessionMessages)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	userId, err := resolveUserId(ctx)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusUnauthorized, "invalid token subject")
	}

	res, err := c.chatService.SendChat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *chatController) EndSession(ctx *fiber.Ctx) error {
	var req dto.EndSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	userId, err := resolveUserId(ctx)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusUnauthorized, "invalid token subject")
	}

	res, err := c.summaryService.EndSession(ctx.Context(), userId, req.SessionId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "session not found")
		}
		return err
	}
	return serverutils.SuccessResponse(ctx, "Session ended", res)
}

func (c *chatController) GetSessionMessages(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.chatService.GetSessionHistory(ctx.Context(), sessionId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "session not found")
		}
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

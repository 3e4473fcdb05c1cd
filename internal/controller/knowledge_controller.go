package controller

import (
	"medisos-be/internal/pkg/serverutils"
	"medisos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Reindex(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	service service.IKnowledgeService
}

func NewKnowledgeController(service service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{service: service}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Post("/reindex", serverutils.JwtMiddleware, c.Reindex)
}

func (c *knowledgeController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.service.Reindex(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Knowledge index rebuilt", res)
}

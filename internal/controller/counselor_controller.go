package controller

import (
	"errors"

	"medisos-be/internal/dto"
	"medisos-be/internal/pkg/serverutils"
	"medisos-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICounselorController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
}

type counselorController struct {
	service service.ICounselorService
}

func NewCounselorController(service service.ICounselorService) ICounselorController {
	return &counselorController{service: service}
}

func (c *counselorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/counselor/v1")
	h.Post("/", c.Create)
	h.Get("/", c.List)
	h.Put("/:counselorId/assign/:userId", serverutils.JwtMiddleware, c.Assign)
}

func (c *counselorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCounselorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Counselor created", res)
}

func (c *counselorController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *counselorController) Assign(ctx *fiber.Ctx) error {
	counselorId, err := uuid.Parse(ctx.Params("counselorId"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid counselor id")
	}
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	res, err := c.service.Assign(ctx.Context(), counselorId, userId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "counselor or user not found")
		}
		return err
	}
	return serverutils.SuccessResponse(ctx, "Counselor assigned", res)
}

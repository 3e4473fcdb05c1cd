package serverutils

import (
	"errors"

	"medisos-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(ctx *fiber.Ctx, code int, message string) error {
	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	})
}

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// standard envelope. Provider outages map to gateway-style statuses so
// clients can tell a misconfigured deployment from an upstream failure.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var providerErr *llm.ProviderError
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			return ErrorResponse(ctx, fiber.StatusServiceUnavailable, "language model provider is not configured")
		case errors.As(err, &providerErr):
			return ErrorResponse(ctx, fiber.StatusBadGateway, "language model provider request failed")
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
		}

		return ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
}

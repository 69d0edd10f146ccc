package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"notevault-be/internal/apperror"
)

// ErrorHandlerMiddleware maps the shared error taxonomy onto HTTP statuses.
// It is the single place a data-layer failure becomes a response; handlers
// just return errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := statusFor(err)
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}

func statusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindSetupRequired:
		return fiber.StatusServiceUnavailable
	case apperror.KindAlreadyExists:
		return fiber.StatusConflict
	case apperror.KindInvalidCredentials:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

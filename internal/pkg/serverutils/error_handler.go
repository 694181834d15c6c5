package serverutils

import (
	"errors"

	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// ErrorHandlerMiddleware turns errors returned by handlers into ErrorResponse bodies.
// log may be nil.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err, log)
	}
}

func WriteError(ctx *fiber.Ctx, err error, log logger.ILogger) error {
	code, body := classify(err)

	if log != nil && code >= fiber.StatusInternalServerError {
		log.Error("HTTP", "Request failed", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": code,
			"error":  err.Error(),
		})
	}
	return ctx.Status(code).JSON(body)
}

func classify(err error) (int, ErrorBody) {
	var validationErr *apperror.ValidationError
	var notFoundErr *apperror.NotFoundError
	var submissionErr *apperror.SubmissionError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		body := ErrorResponse(fiber.StatusBadRequest, validationErr.Message)
		if validationErr.Field != "" {
			body.Errors = map[string]string{validationErr.Field: validationErr.Message}
		}
		return fiber.StatusBadRequest, body
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, ErrorResponse(fiber.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &submissionErr):
		return fiber.StatusBadGateway, ErrorResponse(fiber.StatusBadGateway, submissionErr.Message)
	case errors.As(err, &fiberErr):
		return fiberErr.Code, ErrorResponse(fiberErr.Code, fiberErr.Message)
	default:
		return fiber.StatusInternalServerError, ErrorResponse(fiber.StatusInternalServerError, internalErrorMessage)
	}
}

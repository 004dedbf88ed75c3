package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
)

// Códigos de error expuestos al cliente.
const (
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeNoContact    = "NO_CONTACT"
	CodeInternal     = "INTERNAL"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeDuplicate    = "DUPLICATE"
	CodeInvalidBody  = "INVALID_BODY"
)

const internalErrorMessage = "error interno"

// respondError traduce errores de dominio a HTTP. Las fallas de persistencia y los errores
// no clasificados se registran completos y al cliente solo le llega "error interno".
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: vErr.Msg, Code: CodeValidation})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeValidation})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeNotFound})
	case errors.Is(err, domain.ErrNoContact):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeNoContact})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas", Code: CodeUnauthorized})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeForbidden})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeDuplicate})
	}

	var pErr *domain.PersistenceError
	ev := log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path())
	if errors.As(err, &pErr) {
		ev = ev.Str("op", pErr.Op)
	}
	ev.Msg("error no controlado en handler")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: internalErrorMessage, Code: CodeInternal})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: CodeInvalidBody})
}

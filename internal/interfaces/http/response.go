package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
)

// ok responde con la envolvente estándar {code, message, data}.
func ok(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.OK(status, message, data))
}

// fail responde un error con la misma envolvente, sin data.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Error(status, message))
}

// failFromErr mapea los sentinels del dominio a status HTTP. Cualquier error
// no esperado se loguea con detalle del lado del servidor y responde un 500
// genérico: nunca se filtran errores de driver ni stack traces al cliente.
func failFromErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, "credenciales inválidas")
	case errors.Is(err, domain.ErrSessionExpired):
		return fail(c, fiber.StatusUnauthorized, "sesión expirada")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "acceso denegado")
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, err.Error())
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no esperado en handler")
	return fail(c, fiber.StatusInternalServerError, "error interno")
}

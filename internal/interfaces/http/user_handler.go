package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain"
)

// UserHandler maneja el personal (HR). Todas las rutas quedan detrás del
// gate con RoleSetAdminExecutive.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List lista usuarios con paginación.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	page.DefaultPage()
	users, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "usuarios listados", users)
}

// GetByID obtiene un usuario por ID.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	if user == nil {
		return failFromErr(c, domain.ErrUserNotFound)
	}
	return ok(c, fiber.StatusOK, "usuario encontrado", user)
}

// Update edición parcial de nombre, teléfono y rol.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "usuario actualizado", user)
}

// Deactivate baja lógica; invalida la sesión almacenada de la identidad.
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "usuario dado de baja", nil)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain"
)

// InventoryHandler maneja el inventario propio. Los contadores de reserva
// son de solo lectura por esta API; solo el cierre de eventos los mueve.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create crea un ítem de inventario con reserva en cero.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	item, err := h.uc.Create(in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "ítem creado", item)
}

// GetByID obtiene un ítem por ID.
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	if item == nil {
		return failFromErr(c, domain.ErrNotFound)
	}
	return ok(c, fiber.StatusOK, "ítem encontrado", item)
}

// List lista ítems con paginación.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "ítems listados", list)
}

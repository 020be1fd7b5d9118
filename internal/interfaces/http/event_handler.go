package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// EventHandler maneja eventos y su pipeline de status.
type EventHandler struct {
	uc           *usecase.EventUseCase
	accessSecret string
}

// NewEventHandler construye el handler de eventos.
func NewEventHandler(uc *usecase.EventUseCase, accessSecret string) *EventHandler {
	return &EventHandler{uc: uc, accessSecret: accessSecret}
}

// Create crea un evento en PLANNING con su presupuesto inicial.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	ev, err := h.uc.Create(in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "evento creado", ev)
}

// GetByID obtiene un evento por ID.
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	ev, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	if ev == nil {
		return failFromErr(c, domain.ErrNotFound)
	}
	return ok(c, fiber.StatusOK, "evento encontrado", ev)
}

// List lista eventos con paginación.
func (h *EventHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "eventos listados", list)
}

// UpdateStatus avanza el pipeline del evento. Mover el pipeline está
// restringido a ADMIN/EXECUTIVE; llegar a DONE libera las reservas de
// inventario del presupuesto en la misma transacción.
func (h *EventHandler) UpdateStatus(c *fiber.Ctx) error {
	if !CheckRole(c, h.accessSecret, entity.RoleSetAdminExecutive) {
		return fail(c, fiber.StatusForbidden, "acceso denegado")
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	ev, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), status.Event(in.Status))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "status actualizado", ev)
}

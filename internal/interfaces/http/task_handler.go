package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

// TaskHandler maneja tareas operativas.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create crea una tarea en PENDING.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	task, err := h.uc.Create(in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "tarea creada", task)
}

// GetByID obtiene una tarea por ID.
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	task, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	if task == nil {
		return failFromErr(c, domain.ErrNotFound)
	}
	return ok(c, fiber.StatusOK, "tarea encontrada", task)
}

// ListByEvent lista las tareas de un evento.
func (h *TaskHandler) ListByEvent(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	page.DefaultPage()
	list, err := h.uc.ListByEvent(c.Query("event_id"), page.Limit, page.Offset)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "tareas listadas", list)
}

// UpdateStatus aplica una transición del grafo de tareas.
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	task, err := h.uc.UpdateStatus(c.Params("id"), status.Task(in.Status))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "status actualizado", task)
}

// Assign asigna la tarea a un usuario activo; tarea ya asignada es conflicto.
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	task, err := h.uc.Assign(c.Params("id"), in.UserID)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "tarea asignada", task)
}
